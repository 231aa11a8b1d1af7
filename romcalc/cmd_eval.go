// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:          "eval <expression>...",
		Short:        "Evaluate expressions given as arguments",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(opts, cmd.OutOrStdout())
			for i, arg := range args {
				p.eval(arg, func(offs int) string {
					return fmt.Sprintf("arg %d, col %d", i+1, offs+1)
				})
			}
			return p.err()
		},
	}
}
