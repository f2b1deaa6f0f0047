package intrange

import (
	"cmp"
	"fmt"
	"math"
)

// Range is a closed interval of integers [start, end] with start <= end.
// The zero value is the single point range 0-0.
type Range struct {
	start int64 // inclusive
	end   int64 // inclusive
}

// New returns the range [start, end], or an error matching ErrInvalidRange if start > end.
func New(start, end int64) (Range, error) {
	if start > end {
		return Range{}, fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidRange, start, end)
	}
	return Range{start: start, end: end}, nil
}

// MustNew is like New but panics on an invalid range.
func MustNew(start, end int64) Range {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Point returns the range containing only v.
func Point(v int64) Range {
	return Range{start: v, end: v}
}

func (r Range) Start() int64 {
	return r.start
}

func (r Range) End() int64 {
	return r.end
}

// Size is the number of integers in the range. It wraps to 0 for the full int64 domain.
func (r Range) Size() uint64 {
	return uint64(r.end) - uint64(r.start) + 1
}

// ContainsValue reports whether v lies in the range.
func (r Range) ContainsValue(v int64) bool {
	return r.start <= v && v <= r.end
}

// Overlaps reports whether the ranges share at least one integer. Touching endpoints overlap.
func (r Range) Overlaps(other Range) bool {
	return r.start <= other.end && other.start <= r.end
}

func (r Range) Contains(other Range) bool {
	return r.start <= other.start && r.end >= other.end
}

// IsAdjacent reports whether one range ends exactly one before the other begins.
func (r Range) IsAdjacent(other Range) bool {
	return (r.end != math.MaxInt64 && r.end+1 == other.start) ||
		(other.end != math.MaxInt64 && other.end+1 == r.start)
}

// Merge returns the smallest range covering both r and other.
// It panics with ErrNotMergeable if the ranges neither overlap nor touch; callers
// must check Overlaps or IsAdjacent first.
func (r Range) Merge(other Range) Range {
	if !r.Overlaps(other) && !r.IsAdjacent(other) {
		panic(fmt.Errorf("%w: %v and %v", ErrNotMergeable, r, other))
	}
	return Range{start: min(r.start, other.start), end: max(r.end, other.end)}
}

// Subtract returns the parts of r not covered by exclude, in ascending order.
// The result has zero, one or two ranges.
func (r Range) Subtract(exclude Range) []Range {
	switch {
	case !r.Overlaps(exclude):
		return []Range{r}
	case exclude.Contains(r):
		return nil
	case exclude.start > r.start && exclude.end < r.end:
		return []Range{
			{start: r.start, end: exclude.start - 1},
			{start: exclude.end + 1, end: r.end},
		}
	case exclude.start <= r.start:
		return []Range{{start: exclude.end + 1, end: r.end}}
	default:
		// exclude.end >= r.end
		return []Range{{start: r.start, end: exclude.start - 1}}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.start, r.end)
}

// Compare orders ranges by start, then by end.
func Compare(a, b Range) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}
	return cmp.Compare(a.end, b.end)
}
