package rangefmt

import (
	"bytes"
	"testing"

	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		ranges   []intrange.Range
		expected string
	}{
		{"empty", nil, "(none)"},
		{"single", []intrange.Range{intrange.MustNew(10, 5000)}, "10-5000"},
		{"several", []intrange.Range{intrange.MustNew(10, 19), intrange.MustNew(31, 100)}, "10-19, 31-100"},
		{"negative", []intrange.Range{intrange.MustNew(-50, -10)}, "-50--10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.ranges))
		})
	}
}

func TestFormatter(t *testing.T) {
	ranges := []intrange.Range{intrange.MustNew(1, 2), intrange.MustNew(4, 4)}

	t.Run("separator", func(t *testing.T) {
		assert.Equal(t, "1-2\n4-4", NewFormatter(false, "\n").Format(ranges))
		assert.Equal(t, "1-2, 4-4", NewFormatter(false, "").Format(ranges))
	})

	t.Run("color", func(t *testing.T) {
		got := NewFormatter(true, ",").Format(ranges)
		assert.Contains(t, got, "\x1b[32m1-2\x1b[0m")
		assert.Contains(t, got, "\x1b[32m4-4\x1b[0m")

		none := NewFormatter(true, ",").Format(nil)
		assert.Contains(t, none, "(none)")
		assert.NotEqual(t, "(none)", none)
	})
}

func TestColorMode(t *testing.T) {
	for input, expected := range map[string]ColorMode{
		"":        ColorAuto,
		"auto":    ColorAuto,
		"ALWAYS":  ColorAlways,
		" never ": ColorNever,
	} {
		got, err := ParseColorMode(input)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)

	var buf bytes.Buffer
	assert.True(t, ColorAlways.Enabled(&buf))
	assert.False(t, ColorNever.Enabled(&buf))
	assert.False(t, ColorAuto.Enabled(&buf), "buffers are never terminals")
}
