/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the validation outcome for a single record.
type RecordStatus string

const (
	// RecordStatusPassed indicates the record satisfies the schema.
	RecordStatusPassed RecordStatus = "passed"

	// RecordStatusFailed indicates the record violates a schema rule.
	RecordStatusFailed RecordStatus = "failed"
)

// ValidationStatus is the overall outcome of a validation run.
type ValidationStatus string

const (
	// ValidationStatusPass indicates all records passed.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates at least one record failed.
	ValidationStatusFail ValidationStatus = "fail"
)

// RecordValidation is the outcome for one element of the input list.
type RecordValidation struct {
	Index  int          `json:"index" yaml:"index"`
	Status RecordStatus `json:"status" yaml:"status"`
	Reason string       `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ValidationSummary holds aggregate counts for a validation run.
type ValidationSummary struct {
	Total    int              `json:"total" yaml:"total"`
	Passed   int              `json:"passed" yaml:"passed"`
	Failed   int              `json:"failed" yaml:"failed"`
	Status   ValidationStatus `json:"status" yaml:"status"`
	Duration time.Duration    `json:"duration" yaml:"duration"`
}

// ValidationResult is the full report produced by Validator.Validate.
type ValidationResult struct {
	// ReportID uniquely identifies this validation run.
	ReportID string `json:"reportId" yaml:"reportId"`

	// Version is the tool version that produced the report.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	Results []RecordValidation `json:"results" yaml:"results"`
	Summary ValidationSummary  `json:"summary" yaml:"summary"`
}

// NewValidationResult creates an empty report with a fresh report ID.
func NewValidationResult(version string) *ValidationResult {
	return &ValidationResult{
		ReportID: uuid.New().String(),
		Version:  version,
		Results:  []RecordValidation{},
	}
}
