package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type MedicationStatement struct {
	ResourceBase
	Text                        *Narrative                  `json:"text,omitempty"`
	Contained                   []json.RawMessage           `json:"contained,omitempty"`
	Extension                   []Extension                 `json:"extension,omitempty"`
	Identifier                  []Identifier                `json:"identifier,omitempty"`
	Patient                     *Reference                  `json:"patient,omitempty"`
	InformationSource           *Reference                  `json:"informationSource,omitempty"`
	DateAsserted                string                      `json:"dateAsserted,omitempty"`
	Status                      string                      `json:"status,omitempty"`
	WasNotTaken                 *bool                       `json:"wasNotTaken,omitempty"`
	ReasonNotTaken              []CodeableConcept           `json:"reasonNotTaken,omitempty"`
	ReasonForUseCodeableConcept *CodeableConcept            `json:"reasonForUseCodeableConcept,omitempty"`
	ReasonForUseReference       *Reference                  `json:"reasonForUseReference,omitempty"`
	EffectiveDateTime           string                      `json:"effectiveDateTime,omitempty"`
	EffectivePeriod             *Period                     `json:"effectivePeriod,omitempty"`
	Note                        string                      `json:"note,omitempty"`
	SupportingInformation       []Reference                 `json:"supportingInformation,omitempty"`
	MedicationCodeableConcept   *CodeableConcept            `json:"medicationCodeableConcept,omitempty"`
	MedicationReference         *Reference                  `json:"medicationReference,omitempty"`
	Dosage                      []MedicationStatementDosage `json:"dosage,omitempty"`
}

func (*MedicationStatement) ResourceName() string { return constvars.ResourceMedicationStatement }

type MedicationStatementDosage struct {
	Text             string           `json:"text,omitempty"`
	Timing           *Timing          `json:"timing,omitempty"`
	AsNeededBoolean  *bool            `json:"asNeededBoolean,omitempty"`
	Route            *CodeableConcept `json:"route,omitempty"`
	Method           *CodeableConcept `json:"method,omitempty"`
	QuantityQuantity *Quantity        `json:"quantityQuantity,omitempty"`
}

type MedicationOrder struct {
	ResourceBase
	Text                      *Narrative                      `json:"text,omitempty"`
	Contained                 []json.RawMessage               `json:"contained,omitempty"`
	Extension                 []Extension                     `json:"extension,omitempty"`
	Identifier                []Identifier                    `json:"identifier,omitempty"`
	DateWritten               string                          `json:"dateWritten,omitempty"`
	Status                    string                          `json:"status,omitempty"`
	DateEnded                 string                          `json:"dateEnded,omitempty"`
	ReasonEnded               *CodeableConcept                `json:"reasonEnded,omitempty"`
	Patient                   *Reference                      `json:"patient,omitempty"`
	Prescriber                *Reference                      `json:"prescriber,omitempty"`
	Encounter                 *Reference                      `json:"encounter,omitempty"`
	ReasonCodeableConcept     *CodeableConcept                `json:"reasonCodeableConcept,omitempty"`
	Note                      string                          `json:"note,omitempty"`
	MedicationCodeableConcept *CodeableConcept                `json:"medicationCodeableConcept,omitempty"`
	MedicationReference       *Reference                      `json:"medicationReference,omitempty"`
	DosageInstruction         []DosageInstruction             `json:"dosageInstruction,omitempty"`
	DispenseRequest           *MedicationOrderDispenseRequest `json:"dispenseRequest,omitempty"`
}

func (*MedicationOrder) ResourceName() string { return constvars.ResourceMedicationOrder }

type MedicationOrderDispenseRequest struct {
	Quantity               *Quantity `json:"quantity,omitempty"`
	NumberOfRepeatsAllowed *int      `json:"numberOfRepeatsAllowed,omitempty"`
	ValidityPeriod         *Period   `json:"validityPeriod,omitempty"`
}

type MedicationDispense struct {
	ResourceBase
	Text                      *Narrative          `json:"text,omitempty"`
	Contained                 []json.RawMessage   `json:"contained,omitempty"`
	Extension                 []Extension         `json:"extension,omitempty"`
	Identifier                *Identifier         `json:"identifier,omitempty"`
	Status                    string              `json:"status,omitempty"`
	Patient                   *Reference          `json:"patient,omitempty"`
	Dispenser                 *Reference          `json:"dispenser,omitempty"`
	AuthorizingPrescription   []Reference         `json:"authorizingPrescription,omitempty"`
	Type                      *CodeableConcept    `json:"type,omitempty"`
	Quantity                  *Quantity           `json:"quantity,omitempty"`
	DaysSupply                *Quantity           `json:"daysSupply,omitempty"`
	MedicationCodeableConcept *CodeableConcept    `json:"medicationCodeableConcept,omitempty"`
	MedicationReference       *Reference          `json:"medicationReference,omitempty"`
	WhenPrepared              string              `json:"whenPrepared,omitempty"`
	WhenHandedOver            string              `json:"whenHandedOver,omitempty"`
	Note                      string              `json:"note,omitempty"`
	DosageInstruction         []DosageInstruction `json:"dosageInstruction,omitempty"`
}

func (*MedicationDispense) ResourceName() string { return constvars.ResourceMedicationDispense }
