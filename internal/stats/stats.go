// Package stats measures the time and memory spent computing a range set.
package stats

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

type Sample struct {
	started time.Time
	mem     runtime.MemStats
}

// Start records the current time and allocator counters.
func Start() *Sample {
	s := &Sample{}
	runtime.ReadMemStats(&s.mem)
	s.started = time.Now()
	return s
}

type Report struct {
	Elapsed        time.Duration
	BytesAllocated uint64
	Mallocs        uint64
	HeapInUse      uint64

	Includes int
	Excludes int
	Outputs  int
	// Covered is the number of integers in the result.
	Covered uint64
}

// Stop returns the difference between now and the start of the sample. The
// range counts are left for the caller to fill in.
func (s *Sample) Stop() Report {
	elapsed := time.Since(s.started)
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return Report{
		Elapsed:        elapsed,
		BytesAllocated: mem.TotalAlloc - s.mem.TotalAlloc,
		Mallocs:        mem.Mallocs - s.mem.Mallocs,
		HeapInUse:      mem.HeapInuse,
	}
}

func (r Report) String() string {
	return fmt.Sprintf(
		"ranges: %s in, %s out, %s excluded; covered: %s integers; time: %s; allocated: %s in %s allocations; heap in use: %s",
		humanize.Comma(int64(r.Includes)),
		humanize.Comma(int64(r.Outputs)),
		humanize.Comma(int64(r.Excludes)),
		humanize.Comma(int64(min(r.Covered, 1<<63-1))),
		r.Elapsed.Round(time.Microsecond),
		humanize.IBytes(r.BytesAllocated),
		humanize.Comma(int64(r.Mallocs)),
		humanize.IBytes(r.HeapInUse),
	)
}
