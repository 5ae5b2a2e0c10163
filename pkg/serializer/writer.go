/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Serializer writes a value to an output destination in a configured
// format.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is implemented by serializers that own an underlying file.
type Closer interface {
	Close() error
}

// Writer serializes values to an io.Writer in JSON, YAML, or table format.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter creates a Writer for the given format and destination.
// Unknown formats fall back to JSON; a nil destination defaults to stdout.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a serializer writing to the file at path,
// or to stdout when path is empty or "-".
func NewFileWriterOrStdout(format Format, path string) (Serializer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize writes data to the configured destination.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return w.serializeTable(data)
	default:
		j, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(j))
		return err
	}
}

// Close releases the underlying file, if any. Safe to call multiple times
// and on stdout writers.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}

// serializeTable renders data as flattened FIELD/VALUE rows. Nested
// structures are flattened with dotted paths, list elements with [i]
// prefixes.
func (w *Writer) serializeTable(data any) error {
	// Round-trip through JSON to get a uniform tree of maps and slices.
	j, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize for table output: %w", err)
	}
	var tree any
	if err := json.Unmarshal(j, &tree); err != nil {
		return fmt.Errorf("failed to flatten for table output: %w", err)
	}

	rows := map[string]string{}
	flatten("", tree, rows)

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w.out, "<empty>")
		return err
	}

	keys := make([]string, 0, len(rows))
	for key := range rows {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", key, rows[key])
	}
	return tw.Flush()
}

// flatten walks a decoded JSON tree and records leaf values under their
// flattened key paths.
func flatten(prefix string, node any, rows map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flatten(path, child, rows)
		}
	case []any:
		for i, child := range v {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), child, rows)
		}
	case nil:
		rows[prefix] = "<nil>"
	default:
		rows[prefix] = fmt.Sprintf("%v", v)
	}
}
