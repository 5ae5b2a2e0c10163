/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/recsum/pkg/record"
)

// Validator checks decoded input elements against the record schema.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateRecord checks one decoded element against the record schema.
// Returns the typed record on success, or an error naming the violated
// rule. Elements must come from a json.Number-preserving decode so that
// integer and floating-point inputs stay distinguishable.
func (v *Validator) ValidateRecord(elem any) (*record.Record, error) {
	obj, ok := elem.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record must be a JSON object")
	}

	rec := &record.Record{}

	idRaw, ok := obj["id"]
	if !ok {
		return nil, missingField(obj, "id")
	}
	idNum, ok := idRaw.(json.Number)
	if !ok {
		return nil, fmt.Errorf("field 'id' must be an integer")
	}
	// ParseInt rejects fractional and exponent forms, so 1.0 fails here.
	id, err := strconv.ParseInt(idNum.String(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("field 'id' must be an integer, got %s", idNum)
	}
	rec.ID = id

	nameRaw, ok := obj["name"]
	if !ok {
		return nil, missingField(obj, "name")
	}
	name, ok := nameRaw.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("field 'name' must be a non-empty string")
	}
	rec.Name = name

	valRaw, ok := obj["value"]
	if !ok {
		return nil, missingField(obj, "value")
	}
	valNum, ok := valRaw.(json.Number)
	if !ok {
		// Booleans land here: json.Decoder never yields them as numbers.
		return nil, fmt.Errorf("field 'value' must be a number")
	}
	val, err := valNum.Float64()
	if err != nil {
		return nil, fmt.Errorf("field 'value' must be a number, got %s", valNum)
	}
	rec.Value = val

	return rec, nil
}

// Validate evaluates every element of the input list and returns a full
// report. Unlike ValidateRecord callers, it does not halt on the first
// failure.
func (v *Validator) Validate(ctx context.Context, elems []any) (*ValidationResult, error) {
	start := time.Now()

	result := NewValidationResult(v.Version)

	for i, elem := range elems {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rv := RecordValidation{Index: i}
		if _, err := v.ValidateRecord(elem); err != nil {
			rv.Status = RecordStatusFailed
			rv.Reason = err.Error()
			result.Summary.Failed++
			slog.Debug("record failed validation", "index", i, "reason", rv.Reason)
		} else {
			rv.Status = RecordStatusPassed
			result.Summary.Passed++
		}
		result.Results = append(result.Results, rv)
	}

	result.Summary.Total = len(elems)
	result.Summary.Duration = time.Since(start)
	if result.Summary.Failed > 0 {
		result.Summary.Status = ValidationStatusFail
	} else {
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// missingField builds the error for an absent required field, adding a
// did-you-mean hint when the object carries a similarly spelled key.
func missingField(obj map[string]any, field string) error {
	if hint := closestKey(obj, field); hint != "" {
		return fmt.Errorf("missing field '%s' (found similar key '%s')", field, hint)
	}
	return fmt.Errorf("missing field '%s'", field)
}
