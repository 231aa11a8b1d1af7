// Copyright © 2020 The Pea Authors under an MIT-style license.

package calc

// Grammar is an EBNF description of the expressions accepted by Evaluate,
// in the notation of golang.org/x/exp/ebnf, starting at Expr.
// The numeral productions describe canonical numerals;
// the parser is somewhat more permissive, accepting for example IVI.
const Grammar = `Expr = Term { ( "+" | "-" ) Term } .
Term = Atom { ( "*" | "/" ) Atom } .
Atom = Numeral | "-" Atom | "(" Expr ")" .
Numeral = numeral | "Z" .

numeral = "M" { "M" } [ hundreds ] [ tens ] [ ones ]
	| hundreds [ tens ] [ ones ]
	| tens [ ones ]
	| ones .
hundreds = "CM" | "CD" | "D" [ "C" [ "C" [ "C" ] ] ] | "C" [ "C" [ "C" ] ] .
tens = "XC" | "XL" | "L" [ "X" [ "X" [ "X" ] ] ] | "X" [ "X" [ "X" ] ] .
ones = "IX" | "IV" | "V" [ "I" [ "I" [ "I" ] ] ] | "I" [ "I" [ "I" ] ] .
`
