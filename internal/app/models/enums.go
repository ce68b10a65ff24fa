package models

import (
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"strings"
)

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

func ParseGender(value string) (Gender, error) {
	switch gender := Gender(strings.ToLower(strings.TrimSpace(value))); gender {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return gender, nil
	}
	return "", exceptions.ErrInvalidArgument("gender", fmt.Sprintf(constvars.ErrArgUnknownGender, value))
}

type AccessType string

const (
	AccessTypeGeneralAccess   AccessType = "GeneralAccess"
	AccessTypeAccessCode      AccessType = "AccessCode"
	AccessTypeEmergencyAccess AccessType = "EmergencyAccess"
)

func ParseAccessType(value string) (AccessType, error) {
	for _, accessType := range []AccessType{AccessTypeGeneralAccess, AccessTypeAccessCode, AccessTypeEmergencyAccess} {
		if strings.EqualFold(string(accessType), strings.TrimSpace(value)) {
			return accessType, nil
		}
	}
	return "", exceptions.ErrInvalidArgument("accessType", fmt.Sprintf(constvars.ErrArgUnknownAccessType, value))
}

// DocumentStatus is the status filter of a document search.
type DocumentStatus string

const (
	DocumentStatusCurrent        DocumentStatus = "current"
	DocumentStatusSuperseded     DocumentStatus = "superseded"
	DocumentStatusEnteredInError DocumentStatus = "entered-in-error"
)

func ParseDocumentStatus(value string) (DocumentStatus, error) {
	switch status := DocumentStatus(strings.ToLower(strings.TrimSpace(value))); status {
	case DocumentStatusCurrent, DocumentStatusSuperseded, DocumentStatusEnteredInError:
		return status, nil
	}
	return "", exceptions.ErrInvalidArgument("status", fmt.Sprintf(constvars.ErrArgUnknownDocumentStatus, value))
}
