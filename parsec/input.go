// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package parsec is a small parser-combinator library.
//
// A Parser is a function from an Input to a Result.
// Parsers never modify their input; they return a new Input
// describing the unconsumed suffix, so the same Input
// can be handed to any number of alternatives.
//
// Parsers built from this package hold no mutable state.
// A grammar, once built, can be shared by concurrent parses.
package parsec

// An Input is an immutable view of the text remaining to be parsed.
type Input struct {
	text string
	pos  int
}

// NewInput returns an Input positioned at the start of text.
func NewInput(text string) Input { return Input{text: text} }

// Text returns the full text, including the consumed prefix.
func (in Input) Text() string { return in.text }

// Pos returns the byte offset of the Input within its text.
func (in Input) Pos() int { return in.pos }

// Rest returns the unconsumed suffix.
func (in Input) Rest() string { return in.text[in.pos:] }

// Len returns the number of unconsumed bytes.
func (in Input) Len() int { return len(in.text) - in.pos }

// Empty returns whether the Input is fully consumed.
func (in Input) Empty() bool { return in.pos >= len(in.text) }

// Peek returns the next byte.
// It panics if the Input is empty.
func (in Input) Peek() byte { return in.text[in.pos] }

// Advance returns the Input n bytes further along.
// It panics if fewer than n bytes remain.
func (in Input) Advance(n int) Input {
	if n < 0 || n > in.Len() {
		panic("parsec: advance out of range")
	}
	return Input{text: in.text, pos: in.pos + n}
}
