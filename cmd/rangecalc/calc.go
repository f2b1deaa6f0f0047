package main

import (
	"fmt"
	"io"

	"github.com/garethgeorge/rangecalc/internal/config"
	"github.com/garethgeorge/rangecalc/internal/inputfile"
	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/garethgeorge/rangecalc/internal/rangeparse"
	"github.com/garethgeorge/rangecalc/internal/rangeset"
	"github.com/garethgeorge/rangecalc/internal/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type calcOptions struct {
	includes     []string
	excludes     []string
	includeFiles []string
	excludeFiles []string
	probes       []int64
	output       string
}

func (a *app) calcCommand() *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:   "calc [INCLUDES [EXCLUDES]]",
		Short: "Print the ranges covered by the includes and not by the excludes",
		Example: `  rangecalc calc 10-100 20-30
  rangecalc calc --include "200-300,10-100" --exclude "95-205"
  rangecalc calc --include-file includes.txt --exclude-file excludes.txt.zst`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalc(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.includes, "include", "i", nil, "comma separated ranges to include (repeatable)")
	flags.StringArrayVarP(&opts.excludes, "exclude", "e", nil, "comma separated ranges to exclude (repeatable)")
	flags.StringArrayVar(&opts.includeFiles, "include-file", nil, "file of ranges to include, - for stdin (repeatable)")
	flags.StringArrayVar(&opts.excludeFiles, "exclude-file", nil, "file of ranges to exclude, - for stdin (repeatable)")
	flags.Int64SliceVar(&opts.probes, "probe", nil, "report whether these values are covered by the result")
	flags.StringVarP(&opts.output, "output", "o", inputfile.Stdio, "write the result to this file, .zst to compress")
	flags.Bool("stats", false, "print timing and memory statistics to stderr")
	flags.Bool("digest", false, "print the xxhash64 digest of the result")
	a.bindFlag(cmd, config.KeyStats, "stats")
	a.bindFlag(cmd, config.KeyDigest, "digest")
	return cmd
}

// collect gathers ranges from positional lists, flag lists and files, in that order.
func collect(positional string, lists, files []string) ([]intrange.Range, error) {
	var ranges []intrange.Range
	for _, list := range append([]string{positional}, lists...) {
		parsed, err := rangeparse.Parse(list)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", list)
		}
		ranges = append(ranges, parsed...)
	}
	for _, path := range files {
		parsed, err := inputfile.LoadRangeList(path)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, parsed...)
	}
	return ranges, nil
}

func (a *app) runCalc(opts calcOptions, args []string) (err error) {
	var includeArg, excludeArg string
	if len(args) > 0 {
		includeArg = args[0]
	}
	if len(args) > 1 {
		excludeArg = args[1]
	}

	includes, err := collect(includeArg, opts.includes, opts.includeFiles)
	if err != nil {
		return inputError(errors.Wrap(err, "includes"))
	}
	excludes, err := collect(excludeArg, opts.excludes, opts.excludeFiles)
	if err != nil {
		return inputError(errors.Wrap(err, "excludes"))
	}
	a.log.WithFields(logrus.Fields{
		"includes": len(includes),
		"excludes": len(excludes),
	}).Debug("ranges parsed")

	sample := stats.Start()
	result, err := a.process(includes, excludes)
	if err != nil {
		return err
	}
	report := sample.Stop()
	report.Includes, report.Excludes, report.Outputs = len(includes), len(excludes), len(result)
	report.Covered = rangeset.Size(result)

	out, err := inputfile.Create(opts.output)
	if err != nil {
		return inputError(errors.Wrap(err, "open output"))
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()
	var w io.Writer = out
	if opts.output == inputfile.Stdio {
		w = a.stdout
	}

	fmt.Fprintln(w, a.formatter(w).Format(result))
	if a.cfg.Digest {
		fmt.Fprintf(w, "digest: %016x\n", rangeset.Digest(result))
	}
	if len(opts.probes) > 0 {
		tree := rangeset.NewTree(result...)
		for _, probe := range opts.probes {
			state := "not covered"
			if tree.Contains(probe) {
				state = "covered"
			}
			fmt.Fprintf(w, "%d: %s\n", probe, state)
		}
	}
	if a.cfg.Stats {
		fmt.Fprintln(a.stderr, report)
	}
	return nil
}

func (a *app) process(includes, excludes []intrange.Range) (result []intrange.Range, err error) {
	defer recoverInternal(a.log, &err)
	return a.processor.Process(includes, excludes), nil
}
