package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type AllergyIntolerance struct {
	ResourceBase
	Text          *Narrative                   `json:"text,omitempty"`
	Contained     []json.RawMessage            `json:"contained,omitempty"`
	Extension     []Extension                  `json:"extension,omitempty"`
	Identifier    []Identifier                 `json:"identifier,omitempty"`
	Onset         string                       `json:"onset,omitempty"`
	RecordedDate  string                       `json:"recordedDate,omitempty"`
	Recorder      *Reference                   `json:"recorder,omitempty"`
	Patient       *Reference                   `json:"patient,omitempty"`
	Reporter      *Reference                   `json:"reporter,omitempty"`
	Substance     *CodeableConcept             `json:"substance,omitempty"`
	Status        string                       `json:"status,omitempty"`
	Criticality   string                       `json:"criticality,omitempty"`
	Type          string                       `json:"type,omitempty"`
	Category      string                       `json:"category,omitempty"`
	LastOccurence string                       `json:"lastOccurence,omitempty"`
	Note          *Annotation                  `json:"note,omitempty"`
	Reaction      []AllergyIntoleranceReaction `json:"reaction,omitempty"`
}

func (*AllergyIntolerance) ResourceName() string { return constvars.ResourceAllergyIntolerance }

type AllergyIntoleranceReaction struct {
	Substance     *CodeableConcept  `json:"substance,omitempty"`
	Certainty     string            `json:"certainty,omitempty"`
	Manifestation []CodeableConcept `json:"manifestation,omitempty"`
	Description   string            `json:"description,omitempty"`
	Onset         string            `json:"onset,omitempty"`
	Severity      string            `json:"severity,omitempty"`
	ExposureRoute *CodeableConcept  `json:"exposureRoute,omitempty"`
	Note          *Annotation       `json:"note,omitempty"`
}
