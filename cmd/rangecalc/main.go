package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

const (
	exitOK       = 0
	exitInput    = 1
	exitInternal = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitInput
}

func main() {
	err := newApp(os.Stdout, os.Stderr).rootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("rangecalc: %v", err))
	}
	os.Exit(exitCode(err))
}
