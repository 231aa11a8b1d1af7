// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package script loads files of expressions, one expression per line.
package script

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eaburns/roman/loc"
	"github.com/tliron/commonlog"
)

// Ext is the file extension of script files.
const Ext = ".rn"

var log = commonlog.GetLogger("roman.script")

// A Script is a set of script files.
type Script struct {
	// Path is the absolute path to the script file or directory.
	Path string
	// Dir is the directory containing the script files.
	// It differs from Path if Path is a single file.
	Dir string
	// Files contains the script file paths in alphabetical order.
	Files []string
}

// An Expr is a single non-blank line of a script file.
type Expr struct {
	// Text is the line, without its trailing newline.
	Text string
	// Offs is the byte offset of the line within its file.
	Offs int
	// Lines locates offsets within the file.
	Lines *loc.Lines
}

// Loc returns the location of a byte offset into Text.
func (e Expr) Loc(offs int) loc.Loc { return e.Lines.Loc(e.Offs + offs) }

// Load returns the Script at path.
// path may be either a script file or a directory of script files.
// Files in a directory without the Ext extension are ignored.
func Load(path string) (*Script, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	files, dir, err := scriptFiles(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %s: %d files", path, len(files))
	return &Script{Path: path, Dir: dir, Files: files}, nil
}

func scriptFiles(path string) ([]string, string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if !stat.IsDir() {
		return []string{path}, filepath.Dir(path), nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, "", err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(path, e.Name()))
	}
	sort.Strings(paths)
	return paths, path, nil
}

// Exprs returns the non-blank lines of the file at path.
// Lines containing only spaces and tabs are blank.
// A trailing carriage return is dropped.
func Exprs(path string) ([]Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(data)
	lines := loc.NewLines(path, text)
	var exprs []Expr
	for i := 1; i <= lines.Count(); i++ {
		start := lines.Start(i)
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}
		line := strings.TrimSuffix(text[start:end], "\r")
		if strings.Trim(line, " \t") == "" {
			continue
		}
		exprs = append(exprs, Expr{Text: line, Offs: start, Lines: lines})
	}
	log.Debugf("%s: %d expressions", path, len(exprs))
	return exprs, nil
}
