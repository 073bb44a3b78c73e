// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// ruleConfig is the on-disk form of an extra rule set:
//
//	funcs:
//	  - ENDS_WITH
//	  - REGEX_IS_UUID
type ruleConfig struct {
	Funcs []string `yaml:"funcs"`
}

// LoadRules reads extra predicate function names from the YAML file at
// path and returns one rule per name, in file order. Unknown keys in
// the file are errors.
func LoadRules(path string) ([]*Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading rules: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg ruleConfig
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, xerrors.Errorf("parsing rules %s: %w", path, err)
	}

	var rules []*Rule
	for _, fn := range cfg.Funcs {
		r, err := NewRule(fn)
		if err != nil {
			return nil, xerrors.Errorf("rules %s: %w", path, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
