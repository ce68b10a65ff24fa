package models

import (
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"time"
)

// PatientSearch identifies a patient either by IHI alone or by another
// identifier plus demographics.
type PatientSearch struct {
	Identifier *Identifier
	Birthdate  *time.Time
	Gender     *Gender
	FamilyName string
	GivenName  string
}

func NewIhiPatientSearch(ihi string) (*PatientSearch, error) {
	if utils.IsBlank(ihi) {
		return nil, exceptions.ErrInvalidArgument("ihi", constvars.ErrArgIhiRequired)
	}
	return &PatientSearch{
		Identifier: NewIdentifier(ihi, IdentifierTypeIhi),
	}, nil
}

// NewDemographicPatientSearch builds the alternative search criteria. The
// given name is optional.
func NewDemographicPatientSearch(identifier *Identifier, birthdate time.Time, gender Gender, familyName, givenName string) (*PatientSearch, error) {
	if identifier == nil {
		return nil, exceptions.ErrInvalidArgument("identifier", constvars.ErrArgIdentifierRequired)
	}
	if identifier.IsIhi() {
		return nil, exceptions.ErrInvalidArgument("identifier", constvars.ErrArgIhiNotAllowed)
	}
	if utils.IsBlank(familyName) {
		return nil, exceptions.ErrInvalidArgument("familyName", constvars.ErrArgFamilyNameRequired)
	}
	return &PatientSearch{
		Identifier: identifier,
		Birthdate:  &birthdate,
		Gender:     &gender,
		FamilyName: familyName,
		GivenName:  givenName,
	}, nil
}

func (s *PatientSearch) HasDemographics() bool {
	return s.Birthdate != nil || s.Gender != nil || !utils.IsBlank(s.FamilyName) || !utils.IsBlank(s.GivenName)
}

// Validate enforces the rules for searches assembled without the
// constructors.
func (s *PatientSearch) Validate() error {
	if s.Identifier == nil || utils.IsBlank(s.Identifier.Value) {
		return exceptions.ErrInvalidArgument("identifier", constvars.ErrArgIdentifierRequired)
	}
	if !s.Identifier.Type.IsValid() {
		return exceptions.ErrInvalidArgument("identifierType", fmt.Sprintf(constvars.ErrArgUnknownIdentifierType, s.Identifier.Type))
	}
	if s.Identifier.IsIhi() {
		if s.HasDemographics() {
			return exceptions.ErrInvalidArgument("patientSearch", constvars.ErrArgIhiWithDemographic)
		}
		return nil
	}
	if s.Birthdate == nil || s.Gender == nil || utils.IsBlank(s.FamilyName) {
		return exceptions.ErrInvalidArgument("patientSearch", constvars.ErrArgNoIhi)
	}
	return nil
}
