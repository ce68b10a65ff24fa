package utils

import (
	"mhr-fhir-client/internal/pkg/constvars"
	"time"
)

// FormatFhirDate renders t as a FHIR date. A nil time renders as empty.
func FormatFhirDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constvars.FhirDateLayout)
}

func ParseFhirDate(value string) (time.Time, error) {
	return time.Parse(constvars.FhirDateLayout, value)
}
