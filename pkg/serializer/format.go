/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer renders results to stdout or files in JSON, YAML, or
// table format.
package serializer

// Format identifies an output serialization format.
type Format string

const (
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"

	// FormatTable renders a flattened FIELD/VALUE table for terminal viewing.
	FormatTable Format = "table"
)

// StdoutURI is the special path indicating output should be written to
// stdout.
const StdoutURI = "-"

// IsUnknown reports whether f is not a supported output format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// SupportedFormats returns the names of all supported output formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}
