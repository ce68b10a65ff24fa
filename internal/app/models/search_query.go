package models

import (
	"mhr-fhir-client/internal/pkg/constvars"
	"time"
)

// CodedValue is a class or type code rendered as code^^system.
type CodedValue struct {
	Code       string
	CodeSystem string
}

func (c CodedValue) String() string {
	return c.Code + constvars.FhirCodedValueSeparator + c.CodeSystem
}

type SearchQuery struct {
	ClassCodes []CodedValue
	TypeCodes  []CodedValue
	Identifier string
	Author     string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *DocumentStatus
	SlotName   string
	SlotValue  string
}

func (q *SearchQuery) HasClassOrTypeCode() bool {
	return len(q.ClassCodes) > 0 || len(q.TypeCodes) > 0
}

// HasCriteriaBesidesIdentifier reports whether anything other than the
// identifier was set.
func (q *SearchQuery) HasCriteriaBesidesIdentifier() bool {
	return q.HasClassOrTypeCode() ||
		q.Author != "" ||
		q.StartDate != nil ||
		q.EndDate != nil ||
		q.Status != nil ||
		q.SlotName != "" ||
		q.SlotValue != ""
}
