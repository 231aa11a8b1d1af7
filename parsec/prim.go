// Copyright © 2020 The Pea Authors under an MIT-style license.

package parsec

import (
	"strconv"
	"strings"
)

// A Parser parses a prefix of its Input.
type Parser[T any] func(Input) Result[T]

// Parse applies the Parser to the start of text.
func (p Parser[T]) Parse(text string) Result[T] { return p(NewInput(text)) }

// Char returns a Parser that consumes the single byte c.
func Char(c byte) Parser[byte] {
	want := strconv.Quote(string(c))
	return func(in Input) Result[byte] {
		if in.Empty() || in.Peek() != c {
			return Failure[byte](in, want)
		}
		return Success(c, in.Advance(1))
	}
}

// OneOf returns a Parser that consumes a single byte from set.
func OneOf(set string) Parser[byte] {
	if set == "" {
		panic("parsec: empty character set")
	}
	want := "one of " + strconv.Quote(set)
	return func(in Input) Result[byte] {
		if in.Empty() || strings.IndexByte(set, in.Peek()) < 0 {
			return Failure[byte](in, want)
		}
		return Success(in.Peek(), in.Advance(1))
	}
}

// Prefix returns a Parser that consumes the string s.
func Prefix(s string) Parser[string] {
	if s == "" {
		panic("parsec: empty prefix")
	}
	want := strconv.Quote(s)
	return func(in Input) Result[string] {
		if !strings.HasPrefix(in.Rest(), s) {
			return Failure[string](in, want)
		}
		return Success(s, in.Advance(len(s)))
	}
}

// Const returns a Parser that consumes nothing and always succeeds with v.
func Const[T any](v T) Parser[T] {
	return func(in Input) Result[T] { return Success(v, in) }
}

// End returns a Parser that succeeds with v only on a fully consumed Input.
func End[T any](v T) Parser[T] {
	return func(in Input) Result[T] {
		if !in.Empty() {
			return Failure[T](in, "end of input")
		}
		return Success(v, in)
	}
}
