// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package calc evaluates arithmetic expressions over Roman numerals.
//
// The grammar is
//	Expr   = Term (('+' | '-') Term)*
//	Term   = Atom (('*' | '/') Atom)*
//	Atom   = Numeral | '-' Atom | '(' Expr ')'
// Both binary levels are left-associative,
// and unary minus applies to a single Atom: -V*II is (-V)*II.
// Whitespace is not permitted; callers strip it beforehand.
//
// Arithmetic is on int64 values.
// A result outside the int64 range aborts the evaluation with ErrOverflow.
package calc

import (
	"github.com/eaburns/roman/numeral"
	"github.com/eaburns/roman/parsec"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("roman.calc")

// An Evaluator evaluates expressions.
// It is safe for concurrent use.
type Evaluator struct {
	config Config
	expr   parsec.Parser[int64]
}

// New returns a new Evaluator for the Config.
func New(config Config) *Evaluator {
	ev := &Evaluator{config: config}

	var expr, term, atom parsec.Parser[int64]
	lazyExpr := parsec.Lazy(func() parsec.Parser[int64] { return expr })
	lazyTerm := parsec.Lazy(func() parsec.Parser[int64] { return term })
	lazyAtom := parsec.Lazy(func() parsec.Parser[int64] { return atom })

	mulOps := map[byte]func(int64, int64) (int64, error){
		'*': mul,
		'/': config.Division.div,
	}
	addOps := map[byte]func(int64, int64) (int64, error){
		'+': add,
		'-': sub,
	}
	mulOp, addOp := parsec.OneOf("*/"), parsec.OneOf("+-")

	lparen, rparen := parsec.Char('('), parsec.Char(')')
	// resume finishes an Expr whose first Atom has value v.
	resume := func(v int64) parsec.Parser[int64] {
		return parsec.Bind(parsec.FoldFrom(v, lazyAtom, mulOp, mulOps), func(t int64) parsec.Parser[int64] {
			return parsec.FoldFrom(t, lazyTerm, addOp, addOps)
		})
	}
	// closing matches the ')' of n open groups, innermost first,
	// where v is the value of the innermost Expr.
	var closing func(n int, v int64) parsec.Parser[int64]
	closing = func(n int, v int64) parsec.Parser[int64] {
		p := parsec.Skip(rparen, parsec.Const(v))
		if n == 1 {
			return p
		}
		return parsec.Bind(parsec.Bind(p, resume), func(w int64) parsec.Parser[int64] {
			return closing(n-1, w)
		})
	}
	// A run of n open parentheses is counted in one step.
	// The innermost Expr is parsed once; each enclosing group
	// then continues from the value of the group it starts with.
	// No group is ever parsed twice.
	nested := parsec.Bind(parsec.Consuming(parsec.Count(lparen), `"("`), func(n int) parsec.Parser[int64] {
		return parsec.Bind(lazyExpr, func(v int64) parsec.Parser[int64] { return closing(n, v) })
	})
	atom = parsec.Named("Atom", parsec.Alt(
		numeral.Parser(),
		parsec.TryMap(parsec.Skip(parsec.Char('-'), lazyAtom), neg),
		nested,
	))
	term = parsec.Named("Term", parsec.Fold(parsec.SepBy(atom, mulOp), mulOps))
	expr = parsec.Named("Expr", parsec.Fold(parsec.SepBy(term, addOp), addOps))
	ev.expr = expr
	return ev
}

// Config returns the Evaluator's Config.
func (ev *Evaluator) Config() Config { return ev.config }

// Parser returns a Parser for an expression prefix.
// Unlike Evaluate, it does not require the entire input to be consumed.
func (ev *Evaluator) Parser() parsec.Parser[int64] { return ev.expr }

// Evaluate returns the value of the expression.
//
// The returned error is a *ParseError if the expression does not start
// with a valid expression, a *TrailingInputError if only a prefix
// is a valid expression, or wraps ErrOverflow or ErrDivisionByZero
// if evaluation fails.
func (ev *Evaluator) Evaluate(text string) (int64, error) {
	r := ev.expr.Parse(text)
	switch {
	case r.Aborted():
		log.Debugf("%q: %s", text, r.Err())
		return 0, r.Err()
	case !r.OK():
		pos, _ := parsec.Furthest(r.Tree())
		log.Debugf("%q: %s", text, r.Reason())
		return 0, &ParseError{Offset: pos, Text: text, fail: r.Tree()}
	case !r.Rest.Empty():
		log.Debugf("%q: trailing input at offset %d", text, r.Rest.Pos())
		return 0, &TrailingInputError{Offset: r.Rest.Pos(), Text: text}
	}
	log.Debugf("%q = %d", text, r.Value)
	return r.Value, nil
}

var std = New(Config{})

// Evaluate returns the value of the expression using the default Config.
func Evaluate(text string) (int64, error) { return std.Evaluate(text) }
