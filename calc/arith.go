// Copyright © 2020 The Pea Authors under an MIT-style license.

package calc

import (
	"fmt"
	"math"
)

// Each operation checks its operands against the int64 range
// before computing the result.

func add(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b || b < 0 && a < math.MinInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

func sub(a, b int64) (int64, error) {
	if b < 0 && a > math.MaxInt64+b || b > 0 && a < math.MinInt64+b {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}

func mul(a, b int64) (int64, error) {
	var over bool
	switch {
	case a > 0 && b > 0:
		over = a > math.MaxInt64/b
	case a > 0 && b < 0:
		over = b < math.MinInt64/a
	case a < 0 && b > 0:
		over = a < math.MinInt64/b
	case a < 0 && b < 0:
		over = b < math.MaxInt64/a
	}
	if over {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

func neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("%w: -(%d)", ErrOverflow, a)
	}
	return -a, nil
}

func (d Division) div(a, b int64) (int64, error) {
	switch {
	case b == 0:
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
	case a == math.MinInt64 && b == -1:
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
	}
	q := a / b
	if d == Floor && a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, nil
}
