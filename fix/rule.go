// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"fmt"
	"regexp"
)

// DefaultFuncs lists the predicate functions whose call sites are
// repaired, in the order their rules run.
var DefaultFuncs = []string{
	"CONTAINS",
	"HAS_KEY",
	"STARTS_WITH",
	"REGEX_WILDCARD_MATCH",
	"REGEX_IS_DIGIT",
	"REGEX_IS_ALPHA",
	"REGEX_IS_EMAIL",
	"REGEX_IS_URL",
}

// A Rule rewrites the defective conditionals of a single predicate
// function: If (FUNC(args) { becomes If (FUNC(args)) {.
type Rule struct {
	Func string
	re   *regexp.Regexp
}

var isFuncName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// NewRule returns the rule for the predicate function fn.
// The name must be an uppercase identifier.
func NewRule(fn string) (*Rule, error) {
	if !isFuncName.MatchString(fn) {
		return nil, fmt.Errorf("invalid predicate function name %q", fn)
	}
	// The argument class excludes ')', so the match stops at the first
	// closing parenthesis after the call opens. A call whose arguments
	// contain their own ')' is matched short of its real end.
	re, err := regexp.Compile(`If \((` + fn + `\([^)]+\)) \{`)
	if err != nil {
		return nil, err
	}
	return &Rule{Func: fn, re: re}, nil
}

// Apply replaces every non-overlapping match in text, left to right.
// The rewritten form does not re-match, so Apply is idempotent.
func (r *Rule) Apply(text []byte) []byte {
	return r.re.ReplaceAll(text, []byte(`If (${1}) {`))
}

// DefaultRules returns the built-in rules, one per DefaultFuncs entry,
// in order.
func DefaultRules() []*Rule {
	rules := make([]*Rule, len(DefaultFuncs))
	for i, fn := range DefaultFuncs {
		r, err := NewRule(fn)
		if err != nil {
			panic(err)
		}
		rules[i] = r
	}
	return rules
}
