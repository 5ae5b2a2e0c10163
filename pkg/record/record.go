/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package record defines the input record model and its strict JSON
// loading.
package record

// Record is one validated element of the input list.
type Record struct {
	ID    int64   `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Summary is the aggregate result for a processed input file. It is
// derived once from the validated records and never mutated afterwards.
type Summary struct {
	Count      int     `json:"count" yaml:"count"`
	TotalValue float64 `json:"total_value" yaml:"total_value"`
	AvgValue   float64 `json:"avg_value" yaml:"avg_value"`
}
