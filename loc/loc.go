// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package loc has routines for tracking locations in expression text.
package loc

import (
	"fmt"
	"sort"
)

// A Loc describes a location in a file.
type Loc struct {
	Path string
	Line int
	Col  int
}

func (l Loc) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%d.%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d.%d", l.Path, l.Line, l.Col)
}

// Lines tracks the line breaks of a single file.
type Lines struct {
	Path string
	Len  int
	nl   []int
}

// NewLines returns the Lines of a file given its path and text.
func NewLines(path, text string) *Lines {
	ls := &Lines{Path: path, Len: len(text)}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			ls.nl = append(ls.nl, i)
		}
	}
	return ls
}

// Count returns the number of lines.
// A final line without a trailing newline is counted.
func (ls *Lines) Count() int {
	if len(ls.nl) > 0 && ls.nl[len(ls.nl)-1] == ls.Len-1 {
		return len(ls.nl)
	}
	return len(ls.nl) + 1
}

// Start returns the byte offset of the start of the 1-based line.
func (ls *Lines) Start(line int) int {
	if line <= 1 {
		return 0
	}
	return ls.nl[line-2] + 1
}

// Loc returns the Loc of a byte offset.
// Lines and columns are 1-based; columns count bytes.
func (ls *Lines) Loc(offs int) Loc {
	if offs < 0 || offs > ls.Len {
		panic(fmt.Sprintf("loc: offset %d out of range [0, %d]", offs, ls.Len))
	}
	// The number of newlines before offs is the 0-based line.
	i := sort.SearchInts(ls.nl, offs)
	return Loc{Path: ls.Path, Line: i + 1, Col: offs - ls.Start(i+1) + 1}
}

// A Map maps byte offsets of a squeezed string
// to byte offsets of the original.
type Map []int

// Squeeze returns s with all spaces and tabs removed,
// and the Map from offsets of the result back to offsets in s.
func Squeeze(s string) (string, Map) {
	buf := make([]byte, 0, len(s))
	m := make(Map, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			continue
		}
		buf = append(buf, s[i])
		m = append(m, i)
	}
	// The end of the squeezed string maps to just past its last byte.
	end := len(s)
	if len(m) > 0 {
		end = m[len(m)-1] + 1
	}
	return string(buf), append(m, end)
}

// Orig returns the original offset of an offset into the squeezed string.
func (m Map) Orig(offs int) int { return m[offs] }
