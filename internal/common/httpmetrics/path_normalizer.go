package httpmetrics

import (
	"regexp"
	"strings"
)

var (
	objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// NormalizePath collapses store-assigned identifiers so the metrics
// cardinality stays bounded.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part != "" && (objectIDRegex.MatchString(part) || isNumeric(part)) {
			parts[i] = "{id}"
		}
	}

	result := strings.Join(parts, "/")
	if result == "" {
		return "/"
	}

	return result
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
