package main

import (
	"fmt"

	"github.com/garethgeorge/rangecalc/internal/rangeparse"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate LIST...",
		Short: "Check that each argument is a well formed range list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, list := range args {
				if _, err := rangeparse.Parse(list); err != nil {
					invalid++
					fmt.Fprintf(a.stdout, "%q: invalid: %v\n", list, err)
					continue
				}
				fmt.Fprintf(a.stdout, "%q: valid\n", list)
			}
			if invalid > 0 {
				return inputError(errors.Errorf("%d of %d range lists are invalid", invalid, len(args)))
			}
			return nil
		},
	}
}
