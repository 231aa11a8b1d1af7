// Copyright © 2020 The Pea Authors under an MIT-style license.

package parsec

import (
	"fmt"

	"github.com/eaburns/peggy/peg"
)

// Many returns a Parser that applies p until it fails.
// It always succeeds, possibly with no values.
// A match that consumes nothing ends the repetition.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		var vs []T
		for {
			r := p(in)
			if r.Aborted() {
				return propagate[[]T](r)
			}
			if !r.OK() || r.Rest.Pos() == in.Pos() {
				return Success(vs, in)
			}
			vs = append(vs, r.Value)
			in = r.Rest
		}
	}
}

// Count is like Many, but only counts the matches.
func Count[T any](p Parser[T]) Parser[int] {
	return func(in Input) Result[int] {
		var n int
		for {
			r := p(in)
			if r.Aborted() {
				return propagate[int](r)
			}
			if !r.OK() || r.Rest.Pos() == in.Pos() {
				return Success(n, in)
			}
			n++
			in = r.Rest
		}
	}
}

// Alt returns a Parser that tries each of ps in order on the same Input
// and returns the first success.
// If all fail, the failure tree has one kid for each alternative.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		var kids []*peg.Fail
		for _, p := range ps {
			r := p(in)
			if r.OK() || r.Aborted() {
				return r
			}
			kids = append(kids, r.fail)
		}
		if len(kids) == 1 {
			return Result[T]{fail: kids[0]}
		}
		return Result[T]{fail: &peg.Fail{Pos: in.Pos(), Kids: kids}}
	}
}

// Skip returns a Parser that applies skip, discards its value,
// then applies p to the remaining input.
func Skip[U, T any](skip Parser[U], p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := skip(in)
		if !r.OK() {
			return propagate[T](r)
		}
		return p(r.Rest)
	}
}

// Map returns a Parser that transforms the value of p by f.
func Map[T, R any](p Parser[T], f func(T) R) Parser[R] {
	return func(in Input) Result[R] {
		r := p(in)
		if !r.OK() {
			return propagate[R](r)
		}
		return Success(f(r.Value), r.Rest)
	}
}

// TryMap is like Map, but if f returns an error the parse is aborted.
func TryMap[T, R any](p Parser[T], f func(T) (R, error)) Parser[R] {
	return func(in Input) Result[R] {
		r := p(in)
		if !r.OK() {
			return propagate[R](r)
		}
		v, err := f(r.Value)
		if err != nil {
			return Abort[R](err)
		}
		return Success(v, r.Rest)
	}
}

// Merge returns a Parser that applies p1 then p2
// and combines their values with f.
func Merge[T, U, R any](p1 Parser[T], p2 Parser[U], f func(T, U) R) Parser[R] {
	return TryMerge(p1, p2, func(t T, u U) (R, error) { return f(t, u), nil })
}

// TryMerge is like Merge, but if f returns an error the parse is aborted.
func TryMerge[T, U, R any](p1 Parser[T], p2 Parser[U], f func(T, U) (R, error)) Parser[R] {
	return func(in Input) Result[R] {
		r1 := p1(in)
		if !r1.OK() {
			return propagate[R](r1)
		}
		r2 := p2(r1.Rest)
		if !r2.OK() {
			return propagate[R](r2)
		}
		v, err := f(r1.Value, r2.Value)
		if err != nil {
			return Abort[R](err)
		}
		return Success(v, r2.Rest)
	}
}

// Maybe returns a Parser that succeeds with d, consuming nothing, if p fails.
func Maybe[T any](p Parser[T], d T) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.OK() || r.Aborted() {
			return r
		}
		return Success(d, in)
	}
}

// Ban returns a Parser that fails where p succeeds with the value banned.
func Ban[T comparable](p Parser[T], banned T) Parser[T] {
	want := fmt.Sprintf("a value other than %v", banned)
	return func(in Input) Result[T] {
		r := p(in)
		if r.OK() && r.Value == banned {
			return Failure[T](in, want)
		}
		return r
	}
}

// NotEmpty returns a Parser that fails on an empty Input
// without consulting p.
func NotEmpty[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		if in.Empty() {
			return Failure[T](in, "non-empty input")
		}
		return p(in)
	}
}

// Consuming returns a Parser that fails where p succeeds without consuming input.
func Consuming[T any](p Parser[T], want string) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.OK() && r.Rest.Pos() == in.Pos() {
			return Failure[T](in, want)
		}
		return r
	}
}

// Between returns a Parser that applies left, p, and right in sequence,
// returning the value of p.
func Between[L, T, R any](left Parser[L], p Parser[T], right Parser[R]) Parser[T] {
	return func(in Input) Result[T] {
		l := left(in)
		if !l.OK() {
			return propagate[T](l)
		}
		r := p(l.Rest)
		if !r.OK() {
			return r
		}
		rr := right(r.Rest)
		if !rr.OK() {
			return propagate[T](rr)
		}
		return Success(r.Value, rr.Rest)
	}
}

// Lazy returns a Parser that calls get each time it is applied
// and applies the returned Parser.
// It allows a grammar rule to refer to itself,
// or to a rule that is not yet built.
func Lazy[T any](get func() Parser[T]) Parser[T] {
	return func(in Input) Result[T] { return get()(in) }
}

// Named returns a Parser that attributes failures of p
// to a grammar rule with the given name.
func Named[T any](name string, p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if r.fail == nil {
			return r
		}
		return Result[T]{fail: &peg.Fail{Name: name, Pos: in.Pos(), Kids: []*peg.Fail{r.fail}}}
	}
}

// Bind returns a Parser that applies p, then applies the Parser
// returned by f for p's value to the remaining input.
func Bind[T, R any](p Parser[T], f func(T) Parser[R]) Parser[R] {
	return func(in Input) Result[R] {
		r := p(in)
		if !r.OK() {
			return propagate[R](r)
		}
		return f(r.Value)(r.Rest)
	}
}
