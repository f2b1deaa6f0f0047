// Package batch runs a file of independent range set jobs one after another.
package batch

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/garethgeorge/rangecalc/internal/progress"
	"github.com/garethgeorge/rangecalc/internal/rangefmt"
	"github.com/garethgeorge/rangecalc/internal/rangeparse"
	"github.com/garethgeorge/rangecalc/internal/rangeset"
	"gopkg.in/yaml.v3"
)

var (
	ErrMismatch = errors.New("result does not match expectation")
	ErrInternal = errors.New("internal error")
)

// Job is one include/exclude pair. Expect and Digest are optional checks on the result.
type Job struct {
	Name    string  `yaml:"name"`
	Include string  `yaml:"include"`
	Exclude string  `yaml:"exclude,omitempty"`
	Expect  *string `yaml:"expect,omitempty"`
	// Digest is the hex xxhash64 of the canonical result, see rangeset.Digest.
	Digest string `yaml:"digest,omitempty"`
}

type file struct {
	Jobs []Job `yaml:"jobs"`
}

// Load decodes a YAML job file. Jobs without a name are named after their position.
func Load(r io.Reader) ([]Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode job file: %w", err)
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = "job " + strconv.Itoa(i+1)
		}
	}
	return f.Jobs, nil
}

type Result struct {
	Job    Job
	Ranges []intrange.Range
	Digest uint64
	Err    error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Internal reports whether the job failed on a broken invariant rather than bad input.
func (r Result) Internal() bool {
	return errors.Is(r.Err, ErrInternal)
}

// Run processes jobs in order and returns one result per job.
func Run(jobs []Job, processor *rangeset.Processor, tracker progress.Tracker) []Result {
	if tracker == nil {
		tracker = progress.NoopTracker{}
	}
	tracker.SetTotal(len(jobs))
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		tracker.StartJob(job.Name)
		result := runJob(job, processor)
		tracker.JobDone(job.Name, result.Err)
		results = append(results, result)
	}
	tracker.MarkFinished()
	return results
}

func runJob(job Job, processor *rangeset.Processor) (result Result) {
	result.Job = job
	defer func() {
		if rec := recover(); rec != nil {
			result.Ranges = nil
			result.Err = fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	includes, err := rangeparse.Parse(job.Include)
	if err != nil {
		result.Err = fmt.Errorf("include: %w", err)
		return result
	}
	excludes, err := rangeparse.Parse(job.Exclude)
	if err != nil {
		result.Err = fmt.Errorf("exclude: %w", err)
		return result
	}

	result.Ranges = processor.Process(includes, excludes)
	result.Digest = rangeset.Digest(result.Ranges)
	result.Err = check(job, result)
	return result
}

func check(job Job, result Result) error {
	if job.Expect != nil {
		want, err := parseExpectation(*job.Expect)
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}
		if !slices.Equal(want, result.Ranges) {
			return fmt.Errorf("%w: got %s, want %s", ErrMismatch, rangefmt.Format(result.Ranges), rangefmt.Format(want))
		}
	}
	if job.Digest != "" {
		want, err := strconv.ParseUint(strings.TrimPrefix(job.Digest, "0x"), 16, 64)
		if err != nil {
			return fmt.Errorf("digest %q: %w", job.Digest, err)
		}
		if want != result.Digest {
			return fmt.Errorf("%w: digest %016x, want %016x", ErrMismatch, result.Digest, want)
		}
	}
	return nil
}

func parseExpectation(text string) ([]intrange.Range, error) {
	if strings.TrimSpace(text) == rangefmt.None {
		return nil, nil
	}
	return rangeparse.Parse(text)
}
