// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package numeral parses and renders Roman numerals.
//
// Besides the classical digits, the numeral Z denotes zero.
// Any number of M digits may lead a numeral.
package numeral

import (
	"errors"
	"fmt"
	"math"

	"github.com/eaburns/roman/parsec"
)

// ErrOverflow is returned for a value that exceeds the int64 range.
var ErrOverflow = errors.New("integer overflow")

// Each rule handles one positional value and defers to the next smaller one.
// Longer runs of a repeated digit are tried before shorter ones.
var (
	ones = parsec.Maybe(parsec.Alt(
		digits("III", 3),
		digits("II", 2),
		digits("I", 1),
	), 0)
	four = parsec.Alt(after("IV", 4, ones), ones)
	five = parsec.Alt(after("V", 5, four), four)
	nine = parsec.Alt(after("IX", 9, five), five)

	tens = parsec.Alt(
		after("XXX", 30, nine),
		after("XX", 20, nine),
		after("X", 10, nine),
		nine,
	)
	forty  = parsec.Alt(after("XL", 40, tens), tens)
	fifty  = parsec.Alt(after("L", 50, forty), forty)
	ninety = parsec.Alt(after("XC", 90, fifty), fifty)

	hundreds = parsec.Alt(
		after("CCC", 300, ninety),
		after("CC", 200, ninety),
		after("C", 100, ninety),
		ninety,
	)
	fourHundred = parsec.Alt(after("CD", 400, hundreds), hundreds)
	fiveHundred = parsec.Alt(after("D", 500, fourHundred), fourHundred)
	nineHundred = parsec.Alt(after("CM", 900, fiveHundred), fiveHundred)

	// The run of Ms is counted in one step
	// rather than by recurring once per thousand.
	thousands = parsec.TryMerge(parsec.Count(parsec.Char('M')), nineHundred, addThousands)

	zero = parsec.Map(parsec.Char('Z'), func(byte) int64 { return 0 })

	numeral = parsec.Named("Numeral", parsec.Alt(
		parsec.Consuming(thousands, "Roman numeral"),
		zero,
	))
)

func digits(s string, v int64) parsec.Parser[int64] {
	return parsec.Map(parsec.Prefix(s), func(string) int64 { return v })
}

func after(s string, v int64, rest parsec.Parser[int64]) parsec.Parser[int64] {
	return parsec.Map(parsec.Skip(parsec.Prefix(s), rest), func(r int64) int64 { return v + r })
}

func addThousands(n int, rest int64) (int64, error) {
	if int64(n) > (math.MaxInt64-rest)/1000 {
		return 0, fmt.Errorf("%w: %d thousands", ErrOverflow, n)
	}
	return 1000*int64(n) + rest, nil
}

// Parser returns a Parser for a single numeral.
// It never matches the empty string;
// only Z denotes zero.
//
// The returned Parser is safe for concurrent use.
func Parser() parsec.Parser[int64] { return numeral }

// Parse returns the value of the numeral s.
// The entire string must be a numeral.
func Parse(s string) (int64, error) {
	r := numeral.Parse(s)
	switch {
	case r.Aborted():
		return 0, r.Err()
	case !r.OK():
		return 0, fmt.Errorf("%q: %s", s, r.Reason())
	case !r.Rest.Empty():
		return 0, fmt.Errorf("%q: unexpected %q at offset %d", s, r.Rest.Rest(), r.Rest.Pos())
	}
	return r.Value, nil
}
