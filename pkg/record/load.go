/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotList is returned when the top-level JSON value is not a list.
var ErrNotList = errors.New("input JSON must be a list")

// Load reads the file at path and decodes it as a JSON list.
// File-not-found and malformed JSON are reported as distinct errors.
func Load(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return Decode(data)
}

// Decode parses data as a JSON list of arbitrary elements. Numbers are
// kept as json.Number so integer and floating-point inputs stay
// distinguishable during validation.
func Decode(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to parse input JSON: trailing data after top-level value")
	}

	list, ok := root.([]any)
	if !ok {
		return nil, ErrNotList
	}
	return list, nil
}
