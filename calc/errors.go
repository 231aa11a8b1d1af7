// Copyright © 2020 The Pea Authors under an MIT-style license.

package calc

import (
	"errors"
	"fmt"

	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/roman/numeral"
)

var (
	// ErrOverflow is returned when a value would exceed the int64 range.
	ErrOverflow = numeral.ErrOverflow

	// ErrDivisionByZero is returned for a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// A ParseError is returned when no alternative of the grammar
// matches the start of the expression.
type ParseError struct {
	// Offset is the furthest byte offset reached by any alternative.
	Offset int
	// Text is the expression.
	Text string

	fail *peg.Fail
}

// Tree returns the failure tree of the parse.
func (err *ParseError) Tree() *peg.Fail { return err.fail }

func (err *ParseError) Error() string {
	e := peg.SimpleError(err.Text, err.fail)
	return e.Error()
}

// A TrailingInputError is returned when the grammar matches
// only a strict prefix of the expression.
type TrailingInputError struct {
	// Offset is the byte offset of the first unparsed character.
	Offset int
	// Text is the expression.
	Text string
}

func (err *TrailingInputError) Error() string {
	return fmt.Sprintf("offset %d: unexpected %q", err.Offset, err.Text[err.Offset:])
}
