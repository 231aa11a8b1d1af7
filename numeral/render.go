// Copyright © 2020 The Pea Authors under an MIT-style license.

package numeral

import (
	"errors"
	"strings"
)

// MaxThousands is the greatest number of leading Ms that Render will write.
const MaxThousands = 1000000

// ErrTooLarge is returned by Render for values needing more than MaxThousands Ms.
var ErrTooLarge = errors.New("too large to render")

var symbols = []struct {
	val uint64
	str string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Render returns the canonical numeral for v.
// Zero is rendered as Z, and negative values with a leading minus sign.
func Render(v int64) (string, error) {
	if v == 0 {
		return "Z", nil
	}
	var s strings.Builder
	// The magnitude is computed unsigned, so math.MinInt64 does not overflow.
	n := uint64(v)
	if v < 0 {
		s.WriteByte('-')
		n = -n
	}
	if n/1000 > MaxThousands {
		return "", ErrTooLarge
	}
	s.Grow(int(n/1000) + 16)
	for _, sym := range symbols {
		for n >= sym.val {
			s.WriteString(sym.str)
			n -= sym.val
		}
	}
	return s.String(), nil
}
