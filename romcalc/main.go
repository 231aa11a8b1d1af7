// Copyright © 2020 The Pea Authors under an MIT-style license.

// Romcalc evaluates arithmetic expressions over Roman numerals.
package main

import (
	"os"

	"github.com/eaburns/roman/calc"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("romcalc")

type options struct {
	division  calc.Division
	decimal   bool
	tree      bool
	dump      bool
	verbosity int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "romcalc",
		Short: "A Roman numeral calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbosity, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Var(&opts.division, "division", "rounding of / for mixed signs: floor or truncate")
	flags.BoolVar(&opts.decimal, "decimal", false, "print results as decimal integers")
	flags.BoolVar(&opts.tree, "tree", false, "print the failure tree of parse errors")
	flags.BoolVar(&opts.dump, "dump", false, "dump a record of each evaluation")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newEvalCmd(&opts))
	rootCmd.AddCommand(newRunCmd(&opts))
	rootCmd.AddCommand(newReplCmd(&opts))
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newGrammarCmd())
	return rootCmd
}
