package models

import (
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"strings"
)

type IdentifierType string

const (
	IdentifierTypeMedicareCardNumber   IdentifierType = "MedicareCardNumber"
	IdentifierTypeMilitaryHealthNumber IdentifierType = "MilitaryHealthNumber"
	IdentifierTypeDvaFileNumber        IdentifierType = "DvaFileNumber"
	IdentifierTypeIhi                  IdentifierType = "Ihi"
)

var identifierNamespaces = map[IdentifierType]string{
	IdentifierTypeMedicareCardNumber:   constvars.IdentifierNamespaceMedicareCard,
	IdentifierTypeMilitaryHealthNumber: constvars.IdentifierNamespaceMilitaryHealth,
	IdentifierTypeDvaFileNumber:        constvars.IdentifierNamespaceDvaFile,
	IdentifierTypeIhi:                  constvars.IdentifierNamespaceIhi,
}

func (t IdentifierType) Namespace() string {
	return identifierNamespaces[t]
}

func (t IdentifierType) IsValid() bool {
	_, ok := identifierNamespaces[t]
	return ok
}

// ParseIdentifierType matches names case-insensitively, e.g. "ihi" or
// "MedicareCardNumber".
func ParseIdentifierType(value string) (IdentifierType, error) {
	for identifierType := range identifierNamespaces {
		if strings.EqualFold(string(identifierType), strings.TrimSpace(value)) {
			return identifierType, nil
		}
	}
	return "", exceptions.ErrInvalidArgument("identifierType", fmt.Sprintf(constvars.ErrArgUnknownIdentifierType, value))
}

type Identifier struct {
	Value string
	Type  IdentifierType
}

func NewIdentifier(value string, identifierType IdentifierType) *Identifier {
	return &Identifier{
		Value: value,
		Type:  identifierType,
	}
}

func (i *Identifier) Namespace() string {
	return i.Type.Namespace()
}

// String renders the identifier as namespace|value.
func (i *Identifier) String() string {
	return i.Namespace() + "|" + i.Value
}

func (i *Identifier) IsIhi() bool {
	return i != nil && i.Type == IdentifierTypeIhi
}
