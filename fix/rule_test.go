// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import "testing"

func applyAll(t *testing.T, text string) string {
	t.Helper()
	b := []byte(text)
	for _, r := range DefaultRules() {
		b = r.Apply(b)
	}
	return string(b)
}

func TestDefaultFuncs(t *testing.T) {
	for _, fn := range DefaultFuncs {
		in := "If (" + fn + "(X, Y) {"
		want := "If (" + fn + "(X, Y)) {"
		if got := applyAll(t, in); got != want {
			t.Errorf("%s: have %q, want %q", fn, got, want)
		}
	}
}

func TestIdempotent(t *testing.T) {
	for _, fn := range DefaultFuncs {
		fixed := "If (" + fn + "(X, Y)) {"
		if got := applyAll(t, fixed); got != fixed {
			t.Errorf("%s: refixed %q to %q", fn, fixed, got)
		}
	}
}

func TestPassThrough(t *testing.T) {
	lines := []string{
		"",
		"Let X = 1",
		"If (X > 1) {",
		"If (ENDS_WITH(X, Y) {",   // not one of the eight
		"If (contains(X, Y) {",    // wrong case
		"While (CONTAINS(X, Y) {", // not an If
		"Print(CONTAINS(X, Y))",
	}
	for _, line := range lines {
		if got := applyAll(t, line); got != line {
			t.Errorf("have %q, want %q unchanged", got, line)
		}
	}
}

// Calls whose arguments contain their own ')' are matched only up to
// the first closing parenthesis. These cases pin the resulting
// behavior: the repair is skipped or lands after the nested call
// instead of at the end of the conditional.
func TestNestedCall(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"If (CONTAINS(A, FOO(B)) {", "If (CONTAINS(A, FOO(B)) {"},
		{"If (CONTAINS(A, FOO(B) {", "If (CONTAINS(A, FOO(B)) {"},
		{"If (CONTAINS(A, FOO(B) {X}) {", "If (CONTAINS(A, FOO(B)) {X}) {"},
	}
	for _, tt := range tests {
		if got := applyAll(t, tt.in); got != tt.want {
			t.Errorf("have %q, want %q", got, tt.want)
		}
	}
}

func TestNewRuleBadName(t *testing.T) {
	for _, fn := range []string{"", "contains", "Has_Key", "BAD-NAME", "1DIGIT", "X(Y"} {
		if _, err := NewRule(fn); err == nil {
			t.Errorf("NewRule(%q): no error", fn)
		}
	}
}
