package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type DocumentReference struct {
	ResourceBase
	Text             *Narrative                 `json:"text,omitempty"`
	Contained        []json.RawMessage          `json:"contained,omitempty"`
	Extension        []Extension                `json:"extension,omitempty"`
	MasterIdentifier *Identifier                `json:"masterIdentifier,omitempty"`
	Identifier       []Identifier               `json:"identifier,omitempty"`
	Subject          *Reference                 `json:"subject,omitempty"`
	Type             *CodeableConcept           `json:"type,omitempty"`
	Class            *CodeableConcept           `json:"class,omitempty"`
	Author           []Reference                `json:"author,omitempty"`
	Custodian        *Reference                 `json:"custodian,omitempty"`
	Created          string                     `json:"created,omitempty"`
	Indexed          string                     `json:"indexed,omitempty"`
	Status           string                     `json:"status,omitempty"`
	DocStatus        *CodeableConcept           `json:"docStatus,omitempty"`
	Description      string                     `json:"description,omitempty"`
	SecurityLabel    []CodeableConcept          `json:"securityLabel,omitempty"`
	Content          []DocumentReferenceContent `json:"content,omitempty"`
	Context          *DocumentReferenceContext  `json:"context,omitempty"`
}

func (*DocumentReference) ResourceName() string { return constvars.ResourceDocumentReference }

type DocumentReferenceContent struct {
	Attachment Attachment `json:"attachment"`
	Format     []Coding   `json:"format,omitempty"`
}

type DocumentReferenceContext struct {
	Encounter         *Reference        `json:"encounter,omitempty"`
	Event             []CodeableConcept `json:"event,omitempty"`
	Period            *Period           `json:"period,omitempty"`
	FacilityType      *CodeableConcept  `json:"facilityType,omitempty"`
	PracticeSetting   *CodeableConcept  `json:"practiceSetting,omitempty"`
	SourcePatientInfo *Reference        `json:"sourcePatientInfo,omitempty"`
}

type ExplanationOfBenefit struct {
	ResourceBase
	Text         *Narrative        `json:"text,omitempty"`
	Contained    []json.RawMessage `json:"contained,omitempty"`
	Extension    []Extension       `json:"extension,omitempty"`
	Identifier   []Identifier      `json:"identifier,omitempty"`
	Created      string            `json:"created,omitempty"`
	Outcome      string            `json:"outcome,omitempty"`
	Disposition  string            `json:"disposition,omitempty"`
	Organization *Reference        `json:"organization,omitempty"`
	Request      *Reference        `json:"request,omitempty"`
}

func (*ExplanationOfBenefit) ResourceName() string { return constvars.ResourceExplanationOfBenefit }
