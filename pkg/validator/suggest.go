/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a key may be from a required field
// name to still be offered as a hint.
const maxSuggestDistance = 2

var requiredFields = map[string]struct{}{
	"id":    {},
	"name":  {},
	"value": {},
}

// closestKey returns the key of obj nearest to field within the suggestion
// distance, or "" when nothing is close enough. Keys that are themselves
// required field names are never suggested.
func closestKey(obj map[string]any, field string) string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		if _, known := requiredFields[key]; known {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, key := range keys {
		if d := levenshtein.ComputeDistance(key, field); d < bestDist {
			best, bestDist = key, d
		}
	}
	return best
}
