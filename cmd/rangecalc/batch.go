package main

import (
	"fmt"

	"github.com/garethgeorge/rangecalc/internal/batch"
	"github.com/garethgeorge/rangecalc/internal/inputfile"
	"github.com/garethgeorge/rangecalc/internal/progress"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every job of a YAML job file, - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(args[0])
		},
	}
}

func (a *app) runBatch(path string) error {
	f, err := inputfile.Open(path)
	if err != nil {
		return inputError(errors.Wrap(err, "open job file"))
	}
	jobs, err := batch.Load(f)
	f.Close()
	if err != nil {
		return inputError(errors.Wrap(err, path))
	}

	tracker := progress.NewLogTracker(a.log.WithField("file", path))
	results := batch.Run(jobs, a.processor, tracker)

	formatter := a.formatter(a.stdout)
	var failed, internal int
	for _, result := range results {
		if result.Failed() {
			failed++
			if result.Internal() {
				internal++
			}
			fmt.Fprintf(a.stdout, "%s: FAILED: %v\n", result.Job.Name, result.Err)
			continue
		}
		fmt.Fprintf(a.stdout, "%s: %s\n", result.Job.Name, formatter.Format(result.Ranges))
	}

	a.log.WithFields(logrus.Fields{"jobs": len(results), "failed": failed}).Debug("batch complete")
	switch {
	case internal > 0:
		return &exitError{code: exitInternal, err: errors.Errorf("%d of %d jobs hit an internal error", internal, len(results))}
	case failed > 0:
		return inputError(errors.Errorf("%d of %d jobs failed", failed, len(results)))
	}
	return nil
}
