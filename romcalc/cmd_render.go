// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"fmt"
	"strconv"

	"github.com/eaburns/roman/numeral"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "render <integer>...",
		Short:        "Print integers as Roman numerals",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("parse integer: %w", err)
				}
				s, err := numeral.Render(v)
				if err != nil {
					return fmt.Errorf("%d: %w", v, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
