package utils

import "strings"

// SplitCSV splits a comma separated query parameter into trimmed, non-empty
// values, e.g. "Physics, Math," -> ["Physics", "Math"].
func SplitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	return values
}
