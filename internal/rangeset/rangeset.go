// Package rangeset combines collections of include and exclude ranges into a
// canonical range set: sorted by start, pairwise disjoint and never adjacent.
package rangeset

import (
	"slices"

	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/garethgeorge/rangecalc/internal/poolutil"
)

type Range = intrange.Range

type options struct {
	scratchPoolSize int
	maxScratchCap   int
}

type Option = func(*options)

// WithScratchPoolSize sets how many working set buffers are kept for reuse between calls.
func WithScratchPoolSize(size int) func(*options) {
	return func(o *options) {
		o.scratchPoolSize = size
	}
}

// WithMaxScratchCap bounds the capacity of working set buffers kept for reuse.
func WithMaxScratchCap(capacity int) func(*options) {
	return func(o *options) {
		o.maxScratchCap = capacity
	}
}

// Processor computes canonical range sets. It holds no state besides reusable
// scratch buffers and is safe for concurrent use.
type Processor struct {
	scratch *poolutil.SlicePool[Range]
}

func NewProcessor(opts ...func(*options)) *Processor {
	options := options{
		scratchPoolSize: 8,
		maxScratchCap:   4096,
	}
	for _, opt := range opts {
		opt(&options)
	}
	scratch := poolutil.NewSlicePool[Range](options.scratchPoolSize, 4)
	scratch.MaxRetainCap = options.maxScratchCap
	return &Processor{scratch: scratch}
}

var defaultProcessor = NewProcessor()

// Process returns the integers covered by includes minus those covered by excludes,
// in canonical form. Neither input is modified.
func Process(includes, excludes []Range) []Range {
	return defaultProcessor.Process(includes, excludes)
}

func (p *Processor) Process(includes, excludes []Range) []Range {
	return p.Difference(Union(includes), excludes)
}

// Union merges ranges into their canonical union.
func Union(ranges []Range) []Range {
	if len(ranges) < 2 {
		return slices.Clone(ranges)
	}
	sorted := sortedCopy(ranges)

	type sweep struct {
		done    []Range
		current Range
	}
	final := fold(sorted[1:], sweep{current: sorted[0]}, func(s sweep, next Range) sweep {
		if s.current.Overlaps(next) || s.current.IsAdjacent(next) {
			return sweep{done: s.done, current: s.current.Merge(next)}
		}
		return sweep{done: append(s.done, s.current), current: next}
	})
	return append(final.done, final.current)
}

// Difference removes the coverage of excludes from includes. includes must be
// canonical, as returned by Union; excludes may be in any order and may overlap.
func Difference(includes, excludes []Range) []Range {
	return defaultProcessor.Difference(includes, excludes)
}

func (p *Processor) Difference(includes, excludes []Range) []Range {
	if len(excludes) == 0 {
		return slices.Clone(includes)
	}
	sortedExcludes := sortedCopy(excludes)

	pieces, spare := p.scratch.Get(), p.scratch.Get()
	defer func() {
		p.scratch.Put(pieces)
		p.scratch.Put(spare)
	}()

	var result []Range
	for _, include := range includes {
		pieces = append(pieces[:0], include)
		for _, exclude := range sortedExcludes {
			if exclude.Start() > include.End() {
				// Every later exclude starts even further right.
				break
			}
			if exclude.End() < include.Start() {
				continue
			}
			pieces, spare = subtractFrom(pieces, exclude, spare[:0]), pieces
			if len(pieces) == 0 {
				break
			}
		}
		result = append(result, pieces...)
	}

	// Pieces of different includes only interleave if includes were not canonical.
	slices.SortFunc(result, intrange.Compare)
	return result
}

// subtractFrom appends to dst what remains of each piece once exclude is removed.
func subtractFrom(pieces []Range, exclude Range, dst []Range) []Range {
	for _, piece := range pieces {
		if !piece.Overlaps(exclude) {
			dst = append(dst, piece)
			continue
		}
		dst = append(dst, piece.Subtract(exclude)...)
	}
	return dst
}

// IsCanonical reports whether ranges are sorted by start with a gap of at least
// one integer between neighbours.
func IsCanonical(ranges []Range) bool {
	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1], ranges[i]
		if prev.End() >= cur.Start() || prev.IsAdjacent(cur) {
			return false
		}
	}
	return true
}

// Size returns the number of integers covered by canonical ranges.
func Size(ranges []Range) uint64 {
	var total uint64
	for _, r := range ranges {
		total += r.Size()
	}
	return total
}

func sortedCopy(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, intrange.Compare)
	return sorted
}

func fold[T, A any](items []T, acc A, f func(A, T) A) A {
	for _, item := range items {
		acc = f(acc, item)
	}
	return acc
}
