// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aether-lang/fixif/fix"
)

var (
	showDiff  = flag.Bool("diff", false, "show diff instead of writing files")
	rulesFile = flag.String("rules", "", "load extra predicate rules from `file`")
	dir       = flag.String("C", ".", "run in `dir`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fixif [-diff] [-rules file] [-C dir] [file ...]\n")
	os.Exit(2)
}

// defaultTargets are the stdlib sources known to carry the defect,
// relative to the working directory.
var defaultTargets = []string{
	"stdlib/cli_utils.aether",
	"stdlib/text_template.aether",
	"stdlib/regex_utils.aether",
}

func main() {
	log.SetPrefix("fixif: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()

	targets := flag.Args()
	if len(targets) == 0 {
		targets = defaultTargets
	}

	rules := fix.DefaultRules()
	if *rulesFile != "" {
		extra, err := fix.LoadRules(*rulesFile)
		if err != nil {
			log.Fatal(err)
		}
		rules = append(rules, extra...)
	}

	f := fix.New(*dir, rules)
	f.ShowDiff = *showDiff
	if err := run(f, targets); err != nil {
		log.Fatal(err)
	}
}

// run repairs each target in order. Every file is read, rewritten in
// memory, written back, and reported before the next one is touched,
// so a failure leaves earlier targets repaired and later ones alone.
// In diff mode nothing is written; the pending changes are printed
// once, after all targets load.
func run(f *fix.Fixer, targets []string) error {
	for _, path := range targets {
		if err := f.Fix(path); err != nil {
			return err
		}
		if f.ShowDiff {
			continue
		}
		if err := f.Write(path); err != nil {
			return err
		}
	}

	if f.ShowDiff {
		d, err := f.Diff()
		if err != nil {
			return err
		}
		f.Stdout.Write(d)
	}
	return nil
}
