// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fixif repairs unbalanced If conditionals in Aether source files.
//
// Usage:
//
//	fixif [-diff] [-rules file] [-C dir] [file ...]
//
// An earlier stdlib generation pass emitted predicate conditionals with
// the closing parenthesis of the If dropped:
//
//	If (CONTAINS(Parts, Sep) {
//
// Fixif rewrites every such call site to the balanced form:
//
//	If (CONTAINS(Parts, Sep)) {
//
// Eight predicate functions are repaired: CONTAINS, HAS_KEY,
// STARTS_WITH, REGEX_WILDCARD_MATCH, REGEX_IS_DIGIT, REGEX_IS_ALPHA,
// REGEX_IS_EMAIL, and REGEX_IS_URL. The repair is purely textual,
// one regular expression per predicate: no parsing, no validation
// that a rule matched, and no handling of calls whose arguments
// themselves contain a closing parenthesis.
//
// With no file arguments, fixif processes the three stdlib sources
// known to carry the defect, relative to the working directory:
//
//	stdlib/cli_utils.aether
//	stdlib/text_template.aether
//	stdlib/regex_utils.aether
//
// By default, fixif writes changes back to disk and prints one
// "Fixed <path>" line per processed file. The -diff flag causes fixif
// to print a diff of the intended changes instead.
//
// The -rules flag loads extra predicate names from a YAML file of the
// form:
//
//	funcs:
//	  - ENDS_WITH
//	  - REGEX_IS_UUID
//
// appended after the built-in eight.
//
// The -C flag runs the command as if it had been started in the given
// directory.
package main
