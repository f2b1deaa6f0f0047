package rangeset

import (
	"testing"

	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/stretchr/testify/assert"
)

func TestTree_Add(t *testing.T) {
	testCases := []struct {
		name     string
		adds     []Range
		expected string
	}{
		{"empty", nil, "(none)"},
		{"disjoint", rs(20, 30, 1, 5), "1-5, 20-30"},
		{"merges adjacent before", rs(1, 5, 6, 10), "1-10"},
		{"merges adjacent after", rs(6, 10, 1, 5), "1-10"},
		{"bridges two ranges", rs(1, 5, 10, 15, 6, 9), "1-15"},
		{"swallows several", rs(1, 2, 4, 5, 7, 8, 0, 10), "0-10"},
		{"same start", rs(1, 5, 1, 8), "1-8"},
		{"contained", rs(1, 10, 3, 4), "1-10"},
		{"extends only the tail", rs(1, 5, 20, 30, 4, 12), "1-12, 20-30"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewTree(tc.adds...)
			assert.Equal(t, tc.expected, render(tree.Ranges()))
			assert.True(t, IsCanonical(tree.Ranges()))
		})
	}
}

func TestTree_Remove(t *testing.T) {
	testCases := []struct {
		name     string
		initial  []Range
		remove   Range
		expected string
	}{
		{"split middle", rs(0, 100), intrange.MustNew(20, 30), "0-19, 31-100"},
		{"trim head", rs(0, 100), intrange.MustNew(-5, 10), "11-100"},
		{"trim tail", rs(0, 100), intrange.MustNew(90, 200), "0-89"},
		{"remove all", rs(0, 10, 20, 30), intrange.MustNew(0, 30), "(none)"},
		{"across gap", rs(50, 150, 200, 300), intrange.MustNew(95, 205), "50-94, 206-300"},
		{"same start", rs(10, 20, 30, 40), intrange.MustNew(10, 12), "13-20, 30-40"},
		{"miss", rs(10, 20), intrange.MustNew(21, 29), "10-20"},
		{"empty tree", nil, intrange.MustNew(1, 2), "(none)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewTree(tc.initial...)
			tree.Remove(tc.remove)
			assert.Equal(t, tc.expected, render(tree.Ranges()))
		})
	}
}

func TestTree_Contains(t *testing.T) {
	tree := NewTree(rs(10, 19, 31, 100)...)
	assert.Equal(t, 2, tree.Len())

	for _, v := range []int64{10, 15, 19, 31, 100} {
		assert.True(t, tree.Contains(v), "%d", v)
	}
	for _, v := range []int64{-1, 9, 20, 30, 101} {
		assert.False(t, tree.Contains(v), "%d", v)
	}
}
