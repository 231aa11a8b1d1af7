// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"fmt"

	"github.com/eaburns/roman/script"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file or directory>...",
		Short: "Evaluate each line of script files",
		Long: "Evaluate each non-blank line of the given script files.\n" +
			"A directory argument runs every " + script.Ext + " file in it.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(opts, cmd.OutOrStdout())
			for _, arg := range args {
				s, err := script.Load(arg)
				if err != nil {
					return fmt.Errorf("load script: %w", err)
				}
				for _, file := range s.Files {
					exprs, err := script.Exprs(file)
					if err != nil {
						return fmt.Errorf("read script: %w", err)
					}
					for _, e := range exprs {
						p.eval(e.Text, func(offs int) string { return e.Loc(offs).String() })
					}
				}
			}
			return p.err()
		},
	}
}
