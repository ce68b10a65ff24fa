package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Parameters struct {
	ResourceBase
	Parameter []ParametersParameter `json:"parameter,omitempty"`
}

func (*Parameters) ResourceName() string { return constvars.ResourceParameters }

type ParametersParameter struct {
	Name            string                `json:"name"`
	ValueString     *string               `json:"valueString,omitempty"`
	ValueCode       *string               `json:"valueCode,omitempty"`
	ValueBoolean    *bool                 `json:"valueBoolean,omitempty"`
	ValueDate       *string               `json:"valueDate,omitempty"`
	ValueIdentifier *Identifier           `json:"valueIdentifier,omitempty"`
	Resource        json.RawMessage       `json:"resource,omitempty"`
	Part            []ParametersParameter `json:"part,omitempty"`
}

func NewParameters() *Parameters {
	return &Parameters{ResourceBase: ResourceBase{ResourceType: constvars.ResourceParameters}}
}

func (p *Parameters) AddValueString(name, value string) {
	p.Parameter = append(p.Parameter, ParametersParameter{Name: name, ValueString: &value})
}

func (p *Parameters) AddValueCode(name, value string) {
	p.Parameter = append(p.Parameter, ParametersParameter{Name: name, ValueCode: &value})
}

func (p *Parameters) AddResource(name string, resource Resource) error {
	raw, err := MarshalResource(resource)
	if err != nil {
		return err
	}
	p.Parameter = append(p.Parameter, ParametersParameter{Name: name, Resource: raw})
	return nil
}

// Get returns every parameter with the given name in document order.
func (p *Parameters) Get(name string) []ParametersParameter {
	var matches []ParametersParameter
	for _, parameter := range p.Parameter {
		if parameter.Name == name {
			matches = append(matches, parameter)
		}
	}
	return matches
}
