package fhir_dto

import (
	"errors"
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

var ErrMissingResourceType = errors.New(constvars.ErrDevFHIRResourceTypeMissing)

// Resource is implemented by every FHIR resource in this package.
type Resource interface {
	ResourceName() string
	Base() *ResourceBase
}

type ResourceBase struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id,omitempty"`
	Meta         *Meta  `json:"meta,omitempty"`
}

func (r *ResourceBase) Base() *ResourceBase {
	return r
}

var resourceFactories = map[string]func() Resource{
	constvars.ResourceAllergyIntolerance:   func() Resource { return new(AllergyIntolerance) },
	constvars.ResourceBinary:               func() Resource { return new(Binary) },
	constvars.ResourceBundle:               func() Resource { return new(Bundle) },
	constvars.ResourceDocumentReference:    func() Resource { return new(DocumentReference) },
	constvars.ResourceExplanationOfBenefit: func() Resource { return new(ExplanationOfBenefit) },
	constvars.ResourceMedicationDispense:   func() Resource { return new(MedicationDispense) },
	constvars.ResourceMedicationOrder:      func() Resource { return new(MedicationOrder) },
	constvars.ResourceMedicationStatement:  func() Resource { return new(MedicationStatement) },
	constvars.ResourceOperationOutcome:     func() Resource { return new(OperationOutcome) },
	constvars.ResourceParameters:           func() Resource { return new(Parameters) },
	constvars.ResourcePatient:              func() Resource { return new(Patient) },
	constvars.ResourceRelatedPerson:        func() Resource { return new(RelatedPerson) },
}

// ParseResource decodes any FHIR JSON resource. Types without a dedicated
// struct come back as *GenericResource holding the raw document.
func ParseResource(data []byte) (Resource, error) {
	var header struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	}
	if header.ResourceType == "" {
		return nil, ErrMissingResourceType
	}

	var resource Resource
	if factory, ok := resourceFactories[header.ResourceType]; ok {
		resource = factory()
	} else {
		resource = new(GenericResource)
	}

	if err := json.Unmarshal(data, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// UnmarshalResource decodes data into out and rejects documents whose
// resourceType differs from the one out represents.
func UnmarshalResource(data []byte, out Resource) error {
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	received := out.Base().ResourceType
	if received == "" {
		return ErrMissingResourceType
	}
	if received != out.ResourceName() {
		return fmt.Errorf(constvars.ErrDevFHIRResourceMismatch, out.ResourceName(), received)
	}
	return nil
}

// MarshalResource encodes r, filling in resourceType when the caller left it
// empty.
func MarshalResource(r Resource) ([]byte, error) {
	if base := r.Base(); base.ResourceType == "" {
		base.ResourceType = r.ResourceName()
	}
	return json.Marshal(r)
}

// GenericResource keeps resources this package does not model.
type GenericResource struct {
	ResourceBase
	Raw json.RawMessage `json:"-"`
}

func (g *GenericResource) ResourceName() string {
	return g.ResourceType
}

func (g *GenericResource) UnmarshalJSON(data []byte) error {
	var base ResourceBase
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	g.ResourceBase = base
	g.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (g *GenericResource) MarshalJSON() ([]byte, error) {
	if len(g.Raw) > 0 {
		return g.Raw, nil
	}
	return json.Marshal(g.ResourceBase)
}
