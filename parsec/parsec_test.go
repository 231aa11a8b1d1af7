// Copyright © 2020 The Pea Authors under an MIT-style license.

package parsec

import (
	"errors"
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/google/go-cmp/cmp"
)

// outcome flattens a Result for comparison.
type outcome struct {
	OK    bool
	Value interface{}
	Rest  string
}

func run[T any](p Parser[T], text string) outcome {
	r := p.Parse(text)
	if !r.OK() {
		return outcome{}
	}
	return outcome{OK: true, Value: r.Value, Rest: r.Rest.Rest()}
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name string
		got  outcome
		want outcome
	}{
		{"char match", run(Char('a'), "abc"), outcome{true, byte('a'), "bc"}},
		{"char mismatch", run(Char('a'), "xbc"), outcome{}},
		{"char empty", run(Char('a'), ""), outcome{}},
		{"one of match", run(OneOf("+-"), "-I"), outcome{true, byte('-'), "I"}},
		{"one of mismatch", run(OneOf("+-"), "*I"), outcome{}},
		{"one of empty", run(OneOf("+-"), ""), outcome{}},
		{"prefix match", run(Prefix("III"), "IIIV"), outcome{true, "III", "V"}},
		{"prefix short input", run(Prefix("III"), "II"), outcome{}},
		{"prefix mismatch", run(Prefix("IV"), "IX"), outcome{}},
		{"const", run(Const(7), "abc"), outcome{true, 7, "abc"}},
		{"const empty", run(Const(7), ""), outcome{true, 7, ""}},
		{"end", run(End(1), ""), outcome{true, 1, ""}},
		{"end not empty", run(End(1), "x"), outcome{}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, test.got); diff != "" {
			t.Errorf("%s: (-want,+got)\n%s", test.name, diff)
		}
	}
}

func TestEmptyArgumentsPanic(t *testing.T) {
	for name, f := range map[string]func(){
		"OneOf":  func() { OneOf("") },
		"Prefix": func() { Prefix("") },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(\"\") did not panic", name)
				}
			}()
			f()
		}()
	}
}

func TestCombinators(t *testing.T) {
	a, b := Char('a'), Char('b')
	ab := Merge(a, b, func(x, y byte) string { return string([]byte{x, y}) })
	tests := []struct {
		name string
		got  outcome
		want outcome
	}{
		{"many none", run(Many(a), "bbb"), outcome{true, []byte(nil), "bbb"}},
		{"many some", run(Many(a), "aab"), outcome{true, []byte("aa"), "b"}},
		{"count", run(Count(a), "aaab"), outcome{true, 3, "b"}},
		{"count none", run(Count(a), ""), outcome{true, 0, ""}},
		{"alt first", run(Alt(a, b), "ab"), outcome{true, byte('a'), "b"}},
		{"alt second", run(Alt(a, b), "ba"), outcome{true, byte('b'), "a"}},
		{"alt none", run(Alt(a, b), "cab"), outcome{}},
		{"alt backtracks", run(Alt(Skip(a, b), Char('a')), "ac"), outcome{true, byte('a'), "c"}},
		{"skip", run(Skip(a, b), "abc"), outcome{true, byte('b'), "c"}},
		{"skip fails first", run(Skip(a, b), "bb"), outcome{}},
		{"skip fails second", run(Skip(a, b), "aa"), outcome{}},
		{"map", run(Map(a, func(c byte) int { return int(c - 'a') }), "a"), outcome{true, 0, ""}},
		{"map failure", run(Map(a, func(c byte) int { return 1 }), "b"), outcome{}},
		{"merge", run(ab, "abc"), outcome{true, "ab", "c"}},
		{"merge fails second", run(ab, "aa"), outcome{}},
		{"maybe present", run(Maybe(a, 'z'), "ab"), outcome{true, byte('a'), "b"}},
		{"maybe absent", run(Maybe(a, 'z'), "b"), outcome{true, byte('z'), "b"}},
		{"ban allowed", run(Ban(OneOf("ab"), 'b'), "a"), outcome{true, byte('a'), ""}},
		{"ban banned", run(Ban(OneOf("ab"), 'b'), "b"), outcome{}},
		{"not empty", run(NotEmpty(Const(1)), "x"), outcome{true, 1, "x"}},
		{"not empty on empty", run(NotEmpty(Const(1)), ""), outcome{}},
		{"consuming", run(Consuming(Maybe(a, 0), "a"), "ab"), outcome{true, byte('a'), "b"}},
		{"consuming nothing", run(Consuming(Maybe(a, 0), "a"), "b"), outcome{}},
		{"between", run(Between(Char('('), a, Char(')')), "(a)b"), outcome{true, byte('a'), "b"}},
		{"between no right", run(Between(Char('('), a, Char(')')), "(a"), outcome{}},
		{"between no elem", run(Between(Char('('), a, Char(')')), "()"), outcome{}},
		{"between no left", run(Between(Char('('), a, Char(')')), "a)"), outcome{}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, test.got); diff != "" {
			t.Errorf("%s: (-want,+got)\n%s", test.name, diff)
		}
	}
}

func TestSepBy(t *testing.T) {
	digit := Map(OneOf("0123456789"), func(c byte) int { return int(c - '0') })
	p := SepBy(digit, OneOf("+-"))
	tests := []struct {
		text  string
		elems []int
		seps  []byte
		rest  string
	}{
		{"1", []int{1}, nil, ""},
		{"1+2-3", []int{1, 2, 3}, []byte("+-"), ""},
		{"1+2+", []int{1, 2}, []byte("+"), "+"},
		{"1+x", []int{1}, nil, "+x"},
		{"12", []int{1}, nil, "2"},
	}
	for _, test := range tests {
		r := p.Parse(test.text)
		if !r.OK() {
			t.Errorf("SepBy(%q) failed: %s", test.text, r.Reason())
			continue
		}
		if diff := cmp.Diff(test.elems, r.Value.Elems); diff != "" {
			t.Errorf("SepBy(%q) elems (-want,+got)\n%s", test.text, diff)
		}
		if diff := cmp.Diff(test.seps, r.Value.Seps); diff != "" {
			t.Errorf("SepBy(%q) seps (-want,+got)\n%s", test.text, diff)
		}
		if len(r.Value.Seps) != len(r.Value.Elems)-1 {
			t.Errorf("SepBy(%q): %d seps for %d elems", test.text, len(r.Value.Seps), len(r.Value.Elems))
		}
		if got := r.Rest.Rest(); got != test.rest {
			t.Errorf("SepBy(%q) rest=%q, want %q", test.text, got, test.rest)
		}
	}
	if r := p.Parse("+1"); r.OK() {
		t.Errorf("SepBy(\"+1\") succeeded, wanted failure")
	}
	if got := run(List(digit, Char(',')), "1,2,3"); !cmp.Equal(got, outcome{true, []int{1, 2, 3}, ""}) {
		t.Errorf("List(\"1,2,3\")=%s", pretty.String(got))
	}
}

var errNegative = errors.New("negative")

func TestFold(t *testing.T) {
	digit := Map(OneOf("0123456789"), func(c byte) int { return int(c - '0') })
	ops := map[byte]func(int, int) (int, error){
		'+': func(a, b int) (int, error) { return a + b, nil },
		'-': func(a, b int) (int, error) {
			if a-b < 0 {
				return 0, errNegative
			}
			return a - b, nil
		},
	}
	p := Fold(SepBy(digit, OneOf("+-")), ops)
	tests := []struct {
		text string
		want int
	}{
		{"7", 7},
		{"9-3-2", 4},
		{"1+2+3", 6},
		{"9-1+2", 10},
	}
	for _, test := range tests {
		r := p.Parse(test.text)
		if !r.OK() || r.Value != test.want {
			t.Errorf("Fold(%q)=%v (%s), want %d", test.text, r.Value, r.Reason(), test.want)
		}
	}

	r := p.Parse("1-2+9")
	if !r.Aborted() || !errors.Is(r.Err(), errNegative) {
		t.Errorf("Fold(\"1-2+9\")=%s, want abort with %v", pretty.String(r.Value), errNegative)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Fold with a missing operator did not panic")
		}
	}()
	Fold(SepBy(digit, Char('*')), ops).Parse("1*2")
}

func TestFoldFrom(t *testing.T) {
	digit := Map(OneOf("0123456789"), func(c byte) int { return int(c - '0') })
	ops := map[byte]func(int, int) (int, error){
		'+': func(a, b int) (int, error) { return a + b, nil },
		'-': func(a, b int) (int, error) {
			if a-b < 0 {
				return 0, errNegative
			}
			return a - b, nil
		},
	}
	tests := []struct {
		text string
		want outcome
	}{
		{"", outcome{OK: true, Value: 10, Rest: ""}},
		{"x", outcome{OK: true, Value: 10, Rest: "x"}},
		{"+1+2", outcome{OK: true, Value: 13, Rest: ""}},
		{"-3+", outcome{OK: true, Value: 7, Rest: "+"}},
		{"+5-", outcome{OK: true, Value: 15, Rest: "-"}},
	}
	for _, test := range tests {
		got := run(FoldFrom(10, digit, OneOf("+-"), ops), test.text)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("FoldFrom(10, %q): (-want,+got)\n%s", test.text, diff)
		}
	}

	if r := FoldFrom(1, digit, OneOf("+-"), ops).Parse("-2"); !r.Aborted() || !errors.Is(r.Err(), errNegative) {
		t.Errorf("FoldFrom(1, \"-2\") did not abort with %v", errNegative)
	}

	// Bind threads a parsed value into the next parser.
	sum := Bind(digit, func(v int) Parser[int] { return FoldFrom(v, digit, OneOf("+-"), ops) })
	if r := sum.Parse("4+4-1"); !r.OK() || r.Value != 7 {
		t.Errorf("Bind(digit, FoldFrom)(\"4+4-1\")=%d (%s), want 7", r.Value, r.Reason())
	}
	if r := sum.Parse("+1"); r.OK() {
		t.Errorf("Bind(digit, FoldFrom)(\"+1\") succeeded, want failure")
	}
}

func TestAbortIsNotBacktracked(t *testing.T) {
	boom := errors.New("boom")
	abort := TryMap(Char('a'), func(byte) (byte, error) { return 0, boom })
	tests := []struct {
		name string
		p    Parser[byte]
	}{
		{"alt", Alt(abort, Char('a'))},
		{"maybe", Maybe(abort, 'z')},
		{"skip", Skip(Const(0), abort)},
		{"between", Between(Const(0), abort, Const(0))},
		{"named", Named("rule", abort)},
		{"ban", Ban(abort, 'x')},
	}
	for _, test := range tests {
		r := test.p.Parse("a")
		if !r.Aborted() || r.Err() != boom {
			t.Errorf("%s: got OK=%v Err=%v, want abort", test.name, r.OK(), r.Err())
		}
	}
	if r := Many(abort).Parse("aa"); !r.Aborted() {
		t.Errorf("Many: not aborted")
	}
	if r := Count(abort).Parse("aa"); !r.Aborted() {
		t.Errorf("Count: not aborted")
	}
	if r := SepBy(Char('a'), abort).Parse("aa"); !r.Aborted() {
		t.Errorf("SepBy separator: not aborted")
	}
	if r := TryMerge(Char('a'), Char('b'), func(byte, byte) (int, error) { return 0, boom }).Parse("ab"); !r.Aborted() {
		t.Errorf("TryMerge: not aborted")
	}
}

func TestLazy(t *testing.T) {
	// nest = '(' nest ')' | 'x', counting the depth.
	var nest Parser[int]
	nest = Alt(
		Map(Between(Char('('), Lazy(func() Parser[int] { return nest }), Char(')')), func(n int) int { return n + 1 }),
		Map(Char('x'), func(byte) int { return 0 }),
	)
	for depth := 0; depth < 50; depth++ {
		text := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
		r := nest.Parse(text)
		if !r.OK() || r.Value != depth || !r.Rest.Empty() {
			t.Errorf("nest(%q)=%d, rest %q, want %d", text, r.Value, r.Rest.Rest(), depth)
		}
	}
	if r := nest.Parse("((x)"); r.OK() {
		t.Errorf("nest(\"((x)\") succeeded, wanted failure")
	}
}

func TestReusedInput(t *testing.T) {
	in := NewInput("abc")
	p := Skip(Char('a'), Char('b'))
	r1, r2 := p(in), p(in)
	if !r1.OK() || !r2.OK() || r1.Rest != r2.Rest {
		t.Errorf("repeated parse of the same Input differ: %s, %s", pretty.String(r1.Rest), pretty.String(r2.Rest))
	}
	if in.Rest() != "abc" || in.Pos() != 0 {
		t.Errorf("Input changed by parsing: %q at %d", in.Rest(), in.Pos())
	}
	if got := r1.Rest; got.Pos() != 2 || got.Text() != "abc" || got.Rest() != "c" {
		t.Errorf("rest=%q at %d, want \"c\" at 2", got.Rest(), got.Pos())
	}
}

func TestFailureReason(t *testing.T) {
	p := Named("ab", Alt(Skip(Char('a'), Char('b')), Skip(Char('a'), Char('c')), Char('x')))
	r := p.Parse("ad")
	if r.OK() {
		t.Fatalf("parse succeeded, wanted failure")
	}
	if tree := r.Tree(); tree == nil || tree.Name != "ab" {
		t.Fatalf("tree=%s, want a node named ab", pretty.String(tree))
	}
	pos, wants := Furthest(r.Tree())
	if pos != 1 {
		t.Errorf("furthest position=%d, want 1", pos)
	}
	if diff := cmp.Diff([]string{`"b"`, `"c"`}, wants); diff != "" {
		t.Errorf("wants (-want,+got)\n%s", diff)
	}
	if got, want := r.Reason(), `offset 1: want "b" or "c"`; got != want {
		t.Errorf("Reason()=%q, want %q", got, want)
	}
	if got := Const(1).Parse("").Reason(); got != "" {
		t.Errorf("Reason() of a success=%q, want empty", got)
	}
}
