// Copyright © 2020 The Pea Authors under an MIT-style license.

package parsec

import (
	"fmt"
	"strings"

	"github.com/eaburns/peggy/peg"
)

// A Result is the outcome of applying a Parser.
//
// A Result is in exactly one of three states:
// success, with a Value and the Rest of the input;
// failure, with a tree describing what was wanted;
// or aborted, with an error that stops the entire parse.
//
// Failures are local: an alternation simply tries its next branch.
// Aborts are not: every combinator returns an aborted Result unchanged.
type Result[T any] struct {
	Value T
	Rest  Input

	fail *peg.Fail
	err  error
}

// Success returns a successful Result.
func Success[T any](v T, rest Input) Result[T] {
	return Result[T]{Value: v, Rest: rest}
}

// Failure returns a failed Result for a parse of in
// that wanted the described input.
func Failure[T any](in Input, want string) Result[T] {
	return Result[T]{fail: &peg.Fail{Pos: in.Pos(), Want: want}}
}

// Abort returns a Result that aborts the parse with err.
func Abort[T any](err error) Result[T] {
	if err == nil {
		panic("parsec: abort with nil error")
	}
	return Result[T]{err: err}
}

// OK returns whether the Result is a success.
func (r Result[T]) OK() bool { return r.fail == nil && r.err == nil }

// Aborted returns whether the Result aborted the parse.
func (r Result[T]) Aborted() bool { return r.err != nil }

// Err returns the error that aborted the parse, or nil.
func (r Result[T]) Err() error { return r.err }

// Tree returns the failure tree of a failed Result, or nil.
func (r Result[T]) Tree() *peg.Fail { return r.fail }

// Reason returns a human-readable description of a failure.
// It is empty for successful Results.
func (r Result[T]) Reason() string {
	switch {
	case r.err != nil:
		return r.err.Error()
	case r.fail == nil:
		return ""
	}
	pos, wants := Furthest(r.fail)
	return fmt.Sprintf("offset %d: want %s", pos, strings.Join(wants, " or "))
}

// propagate converts a failed or aborted Result to another value type.
func propagate[R, T any](r Result[T]) Result[R] {
	return Result[R]{fail: r.fail, err: r.err}
}

// Furthest returns the greatest position reached by any leaf of the failure tree
// and the distinct wants of the leaves at that position, in tree order.
func Furthest(f *peg.Fail) (int, []string) {
	pos := -1
	var wants []string
	var walk func(*peg.Fail)
	walk = func(n *peg.Fail) {
		if len(n.Kids) > 0 {
			for _, k := range n.Kids {
				walk(k)
			}
			return
		}
		switch {
		case n.Pos > pos:
			pos = n.Pos
			wants = append(wants[:0], n.Want)
		case n.Pos == pos:
			for _, w := range wants {
				if w == n.Want {
					return
				}
			}
			wants = append(wants, n.Want)
		}
	}
	walk(f)
	return pos, wants
}
