// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fix rewrites defective If conditionals in Aether source
// files. A Fixer loads each target file, applies an ordered list of
// textual rules to it, and either writes the result back or reports
// the pending changes as a diff.
package fix

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/xerrors"

	"github.com/aether-lang/fixif/diff"
)

// A Fixer holds the state for an active repair:
// the rules to run and the files loaded so far.
type Fixer struct {
	ShowDiff bool
	Stdout   io.Writer
	Stderr   io.Writer

	dir   string
	rules []*Rule
	files map[string]*File
	names []string // load order
}

// A File is one loaded target, with its original and rewritten bytes.
type File struct {
	Name string // path as given to Fix
	Old  []byte
	New  []byte
}

// New returns a Fixer rooted at dir (usually ".")
// that runs rules in order.
func New(dir string, rules []*Rule) *Fixer {
	return &Fixer{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		dir:    dir,
		rules:  rules,
		files:  make(map[string]*File),
	}
}

func (f *Fixer) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.dir, name)
}

// Fix loads the file at path and applies every rule to its content.
// Each rule scans the whole text current at the time it runs, so a
// rule can see text introduced by an earlier rule's replacement.
// Nothing is written until Write.
func (f *Fixer) Fix(path string) error {
	old, err := os.ReadFile(f.path(path))
	if err != nil {
		return xerrors.Errorf("reading %s: %w", path, err)
	}
	text := old
	for _, r := range f.rules {
		text = r.Apply(text)
	}
	if f.files[path] == nil {
		f.names = append(f.names, path)
	}
	f.files[path] = &File{Name: path, Old: old, New: text}
	return nil
}

// Write rewrites the named file with its repaired content, truncating
// what was there, and prints one "Fixed <path>" line. The file is
// written and reported even when no rule matched.
func (f *Fixer) Write(path string) error {
	file := f.files[path]
	if file == nil {
		return fmt.Errorf("writing %s: not loaded", path)
	}
	if err := os.WriteFile(f.path(path), file.New, 0666); err != nil {
		return xerrors.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(f.Stdout, "Fixed %s\n", path)
	return nil
}

// Diff returns a unified diff of every changed file against its
// original, in path order.
func (f *Fixer) Diff() ([]byte, error) {
	names := make([]string, len(f.names))
	copy(names, f.names)
	sort.Strings(names)

	var diffs []byte
	for _, name := range names {
		file := f.files[name]
		if bytes.Equal(file.Old, file.New) {
			continue
		}
		d, err := diff.Diff("old/"+name, file.Old, "new/"+name, file.New)
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, d...)
	}
	return diffs, nil
}
