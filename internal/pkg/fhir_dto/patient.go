package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Patient struct {
	ResourceBase
	Text                 *Narrative        `json:"text,omitempty"`
	Contained            []json.RawMessage `json:"contained,omitempty"`
	Extension            []Extension       `json:"extension,omitempty"`
	Identifier           []Identifier      `json:"identifier,omitempty"`
	Active               *bool             `json:"active,omitempty"`
	Name                 []HumanName       `json:"name,omitempty"`
	Telecom              []ContactPoint    `json:"telecom,omitempty"`
	Gender               string            `json:"gender,omitempty"`
	BirthDate            string            `json:"birthDate,omitempty"`
	DeceasedBoolean      *bool             `json:"deceasedBoolean,omitempty"`
	DeceasedDateTime     string            `json:"deceasedDateTime,omitempty"`
	Address              []Address         `json:"address,omitempty"`
	MaritalStatus        *CodeableConcept  `json:"maritalStatus,omitempty"`
	ManagingOrganization *Reference        `json:"managingOrganization,omitempty"`
}

func (*Patient) ResourceName() string { return constvars.ResourcePatient }

func NewPatient() *Patient {
	patient := new(Patient)
	patient.ResourceType = constvars.ResourcePatient
	return patient
}

type RelatedPerson struct {
	ResourceBase
	Text         *Narrative        `json:"text,omitempty"`
	Contained    []json.RawMessage `json:"contained,omitempty"`
	Extension    []Extension       `json:"extension,omitempty"`
	Identifier   []Identifier      `json:"identifier,omitempty"`
	Patient      *Reference        `json:"patient,omitempty"`
	Relationship *CodeableConcept  `json:"relationship,omitempty"`
	Name         *HumanName        `json:"name,omitempty"`
	Telecom      []ContactPoint    `json:"telecom,omitempty"`
	Gender       string            `json:"gender,omitempty"`
	BirthDate    string            `json:"birthDate,omitempty"`
	Address      []Address         `json:"address,omitempty"`
	Period       *Period           `json:"period,omitempty"`
}

func (*RelatedPerson) ResourceName() string { return constvars.ResourceRelatedPerson }
