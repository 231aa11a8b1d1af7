// Copyright © 2020 The Pea Authors under an MIT-style license.

package calc

import "fmt"

// Config configures an Evaluator.
// The zero Config is the default.
type Config struct {
	// Division is the rounding used by the / operator.
	Division Division
}

// Division is a rounding mode for integer division.
type Division int

const (
	// Floor rounds quotients toward negative infinity: -V/II is -III.
	Floor Division = iota
	// Truncate rounds quotients toward zero: -V/II is -II.
	Truncate
)

func (d Division) String() string {
	switch d {
	case Floor:
		return "floor"
	case Truncate:
		return "truncate"
	default:
		return fmt.Sprintf("Division(%d)", int(d))
	}
}

// Set sets the Division from its name.
// Together with String and Type it lets a Division be used as a command-line flag.
func (d *Division) Set(s string) error {
	switch s {
	case "floor":
		*d = Floor
	case "truncate", "trunc":
		*d = Truncate
	default:
		return fmt.Errorf("unknown division %q: want floor or truncate", s)
	}
	return nil
}

// Type returns the flag type name.
func (d *Division) Type() string { return "division" }
