// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:          "repl",
		Short:        "Evaluate expressions read line by line from standard input",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := ""
			if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				prompt = "> "
			}
			return repl(opts, cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
		},
	}
}

// repl evaluates each non-blank line of in until EOF.
// Failed lines are reported and do not stop the loop.
func repl(opts *options, in io.Reader, out io.Writer, prompt string) error {
	p := newPrinter(opts, out)
	sc := bufio.NewScanner(in)
	sc.Buffer(nil, 1<<24)
	for n := 1; ; n++ {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.Trim(line, " \t\r") == "" {
			continue
		}
		p.eval(strings.TrimSuffix(line, "\r"), func(offs int) string {
			return fmt.Sprintf("line %d, col %d", n, offs+1)
		})
	}
	if prompt != "" {
		fmt.Fprintln(out)
	}
	log.Debugf("repl: %d expressions, %d failed", p.total, p.failed)
	return sc.Err()
}
