// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"fmt"

	"github.com/eaburns/roman/calc"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), calc.Grammar)
			return err
		},
	}
}
