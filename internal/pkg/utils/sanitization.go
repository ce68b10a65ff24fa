package utils

import (
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SanitizeValues trims every value and drops the ones left empty, keeping
// the original order.
func SanitizeValues(input []string) []string {
	sanitized := make([]string, 0, len(input))
	for _, v := range cleanWhiteSpaceFromEachStringOfAnArray(input) {
		if v != "" {
			sanitized = append(sanitized, v)
		}
	}
	return sanitized
}
