package rangeset

import (
	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/google/btree"
)

// Tree is a canonical range set that supports incremental edits and point lookups.
// It is not thread-safe.
type Tree struct {
	// ranges is ordered by start; canonical ranges never share a start.
	ranges *btree.BTreeG[Range]
}

func NewTree(ranges ...Range) *Tree {
	t := &Tree{
		ranges: btree.NewG(32, func(a, b Range) bool { return a.Start() < b.Start() }),
	}
	for _, r := range ranges {
		t.Add(r)
	}
	return t
}

// floor returns the range with the greatest start <= v.
func (t *Tree) floor(v int64) (Range, bool) {
	var found Range
	var ok bool
	t.ranges.DescendLessOrEqual(intrange.Point(v), func(item Range) bool {
		found = item
		ok = true
		return false
	})
	return found, ok
}

// Add inserts r, merging it with any ranges it overlaps or touches.
func (t *Tree) Add(r Range) {
	merged := r
	if prev, ok := t.floor(r.Start()); ok && (prev.Overlaps(r) || prev.IsAdjacent(r)) {
		t.ranges.Delete(prev)
		merged = merged.Merge(prev)
	}

	var absorbed []Range
	t.ranges.AscendGreaterOrEqual(intrange.Point(merged.Start()), func(item Range) bool {
		if !item.Overlaps(merged) && !item.IsAdjacent(merged) {
			return false
		}
		absorbed = append(absorbed, item)
		merged = merged.Merge(item)
		return true
	})
	for _, item := range absorbed {
		t.ranges.Delete(item)
	}
	t.ranges.ReplaceOrInsert(merged)
}

// Remove deletes the integers of r from the set, splitting ranges as needed.
func (t *Tree) Remove(r Range) {
	var hit []Range
	if prev, ok := t.floor(r.Start()); ok && prev.Overlaps(r) {
		hit = append(hit, prev)
	}
	t.ranges.AscendGreaterOrEqual(intrange.Point(r.Start()), func(item Range) bool {
		if item.Start() > r.End() {
			return false
		}
		if len(hit) == 0 || hit[0] != item {
			hit = append(hit, item)
		}
		return true
	})
	for _, item := range hit {
		t.ranges.Delete(item)
		for _, piece := range item.Subtract(r) {
			t.ranges.ReplaceOrInsert(piece)
		}
	}
}

// Contains reports whether v is covered by the set.
func (t *Tree) Contains(v int64) bool {
	r, ok := t.floor(v)
	return ok && r.ContainsValue(v)
}

// Ranges returns the set in canonical order.
func (t *Tree) Ranges() []Range {
	out := make([]Range, 0, t.ranges.Len())
	t.ranges.Ascend(func(item Range) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Len is the number of disjoint ranges in the set.
func (t *Tree) Len() int {
	return t.ranges.Len()
}
