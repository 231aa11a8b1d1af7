// Copyright © 2020 The Pea Authors under an MIT-style license.

package parsec

import "fmt"

// A Seq is a sequence of elements and the separators between them.
// len(Seps) is always len(Elems)-1.
type Seq[T, U any] struct {
	Elems []T
	Seps  []U
}

// SepBy returns a Parser for one or more elements separated by sep.
// Repetition stops at the first separator or element that fails;
// a trailing separator with no element is not consumed.
func SepBy[T, U any](elem Parser[T], sep Parser[U]) Parser[Seq[T, U]] {
	return func(in Input) Result[Seq[T, U]] {
		r := elem(in)
		if !r.OK() {
			return propagate[Seq[T, U]](r)
		}
		seq := Seq[T, U]{Elems: []T{r.Value}}
		in = r.Rest
		for {
			s := sep(in)
			if s.Aborted() {
				return propagate[Seq[T, U]](s)
			}
			if !s.OK() {
				break
			}
			e := elem(s.Rest)
			if e.Aborted() {
				return propagate[Seq[T, U]](e)
			}
			if !e.OK() {
				break
			}
			seq.Elems = append(seq.Elems, e.Value)
			seq.Seps = append(seq.Seps, s.Value)
			in = e.Rest
		}
		return Success(seq, in)
	}
}

// List is like SepBy, but discards the separators.
func List[T, U any](elem Parser[T], sep Parser[U]) Parser[[]T] {
	return Map(SepBy(elem, sep), func(s Seq[T, U]) []T { return s.Elems })
}

// Fold returns a Parser that reduces the sequence parsed by p
// from left to right, combining the accumulator with each element
// by the operator keyed by the separator that precedes the element.
//
// Every separator that p can produce must have an operator.
// If an operator returns an error, the parse is aborted.
func Fold[T any, U comparable](p Parser[Seq[T, U]], ops map[U]func(T, T) (T, error)) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.OK() {
			return propagate[T](r)
		}
		elems, seps := r.Value.Elems, r.Value.Seps
		acc := elems[0]
		for i, sep := range seps {
			op, ok := ops[sep]
			if !ok {
				panic(fmt.Sprintf("parsec: no operator for separator %v", sep))
			}
			v, err := op(acc, elems[i+1])
			if err != nil {
				return Abort[T](err)
			}
			acc = v
		}
		return Success(acc, r.Rest)
	}
}

// FoldFrom returns a Parser that continues a fold from acc.
// It parses zero or more separator-element pairs,
// combining the accumulator with each element like Fold.
// Repetition stops like SepBy's: a separator with no element
// following it is not consumed.
func FoldFrom[T any, U comparable](acc T, elem Parser[T], sep Parser[U], ops map[U]func(T, T) (T, error)) Parser[T] {
	return func(in Input) Result[T] {
		acc := acc
		for {
			s := sep(in)
			if s.Aborted() {
				return propagate[T](s)
			}
			if !s.OK() {
				return Success(acc, in)
			}
			e := elem(s.Rest)
			if e.Aborted() {
				return propagate[T](e)
			}
			if !e.OK() {
				return Success(acc, in)
			}
			op, ok := ops[s.Value]
			if !ok {
				panic(fmt.Sprintf("parsec: no operator for separator %v", s.Value))
			}
			v, err := op(acc, e.Value)
			if err != nil {
				return Abort[T](err)
			}
			acc = v
			in = e.Rest
		}
	}
}
