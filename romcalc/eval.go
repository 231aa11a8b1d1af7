// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pretty"
	"github.com/eaburns/roman/calc"
	"github.com/eaburns/roman/loc"
	"github.com/eaburns/roman/numeral"
)

// A printer evaluates expressions and prints their results.
// Failures are printed and counted; evaluation continues.
type printer struct {
	opts   *options
	ev     *calc.Evaluator
	out    io.Writer
	total  int
	failed int
}

func newPrinter(opts *options, out io.Writer) *printer {
	return &printer{
		opts: opts,
		ev:   calc.New(calc.Config{Division: opts.division}),
		out:  out,
	}
}

// A record is the outcome of a single evaluation, as printed by --dump.
type record struct {
	Where   string
	Expr    string
	Value   int64
	Numeral string
	Error   string
}

// eval evaluates the line after removing spaces and tabs.
// where maps a byte offset of the line to a location prefix for messages.
func (p *printer) eval(line string, where func(offs int) string) {
	p.total++
	text, m := loc.Squeeze(line)
	rec := record{Where: where(0), Expr: text}
	v, err := p.ev.Evaluate(text)
	if err == nil {
		rec.Value = v
		rec.Numeral, err = numeral.Render(v)
		if errors.Is(err, numeral.ErrTooLarge) && p.opts.decimal {
			err = nil
		}
	}
	if err != nil {
		p.failed++
		rec.Error = err.Error()
		offs := 0
		if o, ok := errorOffset(err); ok {
			offs = m.Orig(o)
		}
		fmt.Fprintf(p.out, "%s: %s\n", where(offs), err)
		var perr *calc.ParseError
		if p.opts.tree && errors.As(err, &perr) {
			peg.PrettyWrite(p.out, perr.Tree())
			fmt.Fprintln(p.out)
		}
	} else if p.opts.decimal {
		fmt.Fprintln(p.out, strconv.FormatInt(v, 10))
	} else {
		fmt.Fprintln(p.out, rec.Numeral)
	}
	if p.opts.dump {
		fmt.Fprintln(p.out, pretty.String(rec))
	}
}

// err returns a non-nil error if any evaluation failed.
func (p *printer) err() error {
	if p.failed == 0 {
		return nil
	}
	log.Infof("%d of %d expressions failed", p.failed, p.total)
	return fmt.Errorf("%d of %d expressions failed", p.failed, p.total)
}

func errorOffset(err error) (int, bool) {
	var perr *calc.ParseError
	if errors.As(err, &perr) {
		return perr.Offset, true
	}
	var terr *calc.TrailingInputError
	if errors.As(err, &terr) {
		return terr.Offset, true
	}
	return 0, false
}
