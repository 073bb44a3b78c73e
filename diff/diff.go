// Copyright 2026 The Aether Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff implements a Diff function that compares two inputs
// using the 'diff' tool.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// Diff returns the unified diff of old and new, with the header
// rewritten to use oldName and newName instead of the temporary file
// names handed to the diff tool. It returns nil for identical inputs.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	f1, err := writeTempFile(old)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f1)

	f2, err := writeTempFile(new)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f2)

	data, err := exec.Command("diff", "-u", f1, f2).CombinedOutput()
	if err != nil && len(data) == 0 {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	// Skip the ---/+++ lines naming the temp files; if the output has
	// any other shape, return it untouched.
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return data, nil
	}
	j := bytes.IndexByte(data[i+1:], '\n')
	if j < 0 {
		return data, nil
	}
	start := i + 1 + j + 1
	if start >= len(data) || data[start] != '@' {
		return data, nil
	}

	return append([]byte(fmt.Sprintf("diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)), data[start:]...), nil
}

func writeTempFile(data []byte) (string, error) {
	file, err := os.CreateTemp("", "fixif-diff")
	if err != nil {
		return "", err
	}
	_, err = file.Write(data)
	if err1 := file.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}
