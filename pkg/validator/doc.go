/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator enforces the record schema on decoded input elements.
//
// # Schema
//
// Each element of the input list must be a JSON object with these required
// fields:
//
//	id     -> integer (a floating-point value such as 1.0 is rejected)
//	name   -> string, non-empty after trimming whitespace
//	value  -> number (integer or floating point; booleans are rejected)
//
// Extra fields are ignored. Rules are applied in order and the first
// violation wins; the returned error names the field and the violated rule.
// When a required field is missing but the object carries a similarly
// spelled key, the error includes a did-you-mean hint.
//
// # Usage
//
// Per-record validation (caller halts on first failure):
//
//	v := validator.New(validator.WithVersion("1.0.0"))
//	rec, err := v.ValidateRecord(elem)
//
// Full-report validation over a decoded list:
//
//	result, err := v.Validate(ctx, elems)
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//	for _, r := range result.Results {
//	    fmt.Printf("  [%d] %s %s\n", r.Index, r.Status, r.Reason)
//	}
//
// ValidationResult contains per-record outcomes and a Summary with
// pass/fail counts, overall status, and evaluation duration.
package validator
