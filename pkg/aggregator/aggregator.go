/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package aggregator folds validated records into an aggregate summary.
package aggregator

import "github.com/NVIDIA/recsum/pkg/record"

// Summarize computes count, total, and arithmetic mean of the record
// values. An empty input yields a zero summary by explicit policy rather
// than a division-by-zero fallback. Pure function; no side effects.
func Summarize(records []record.Record) record.Summary {
	s := record.Summary{}
	for _, rec := range records {
		s.Count++
		s.TotalValue += rec.Value
	}
	if s.Count > 0 {
		s.AvgValue = s.TotalValue / float64(s.Count)
	}
	return s
}
