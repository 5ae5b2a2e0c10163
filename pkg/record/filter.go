package record

import "strings"

// Exclude returns a new slice with records dropped when their name matches
// any of the provided patterns. Supports wildcard patterns:
//   - "prefix*" matches names starting with "prefix"
//   - "*suffix" matches names ending with "suffix"
//   - "*contains*" matches names containing "contains"
//   - "exact" matches names exactly
func Exclude(records []Record, patterns []string) []Record {
	result := make([]Record, 0, len(records))

	for _, rec := range records {
		omit := false
		for _, pattern := range patterns {
			if matchesPattern(rec.Name, pattern) {
				omit = true
				break
			}
		}
		if !omit {
			result = append(result, rec)
		}
	}

	return result
}

// matchesPattern checks if a name matches a wildcard pattern.
func matchesPattern(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	// *contains* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		substr := strings.Trim(pattern, "*")
		return strings.Contains(name, substr)
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		suffix := strings.TrimPrefix(pattern, "*")
		return strings.HasSuffix(name, suffix)
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(name, prefix)
	}

	return false
}
