package exceptions

import (
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/fhir_dto"
)

// MhrFhirError is returned by every failed My Health Record FHIR call.
// OperationOutcome is nil when the body was not a FHIR resource or did not
// carry an outcome.
type MhrFhirError struct {
	RestError
	StatusDescription string
	OperationOutcome  *fhir_dto.OperationOutcome
}

// NewMhrFhirError interprets a failure body. A Bundle contributes the outcome
// held in its first entry, a bare OperationOutcome is used as is, anything
// else leaves the outcome empty.
func NewMhrFhirError(statusCode int, statusDescription, responseContent string) *MhrFhirError {
	mhrErr := &MhrFhirError{
		RestError: RestError{
			StatusCode:      statusCode,
			ResponseContent: responseContent,
		},
		StatusDescription: statusDescription,
	}

	resource, err := fhir_dto.ParseResource([]byte(responseContent))
	if err != nil {
		return mhrErr
	}

	switch r := resource.(type) {
	case *fhir_dto.Bundle:
		mhrErr.OperationOutcome = firstEntryOutcome(r)
	case *fhir_dto.OperationOutcome:
		mhrErr.OperationOutcome = r
	}
	return mhrErr
}

func firstEntryOutcome(bundle *fhir_dto.Bundle) *fhir_dto.OperationOutcome {
	if len(bundle.Entry) == 0 {
		return nil
	}
	resource, err := bundle.Entry[0].ParseResource()
	if err != nil {
		return nil
	}
	outcome, _ := resource.(*fhir_dto.OperationOutcome)
	return outcome
}

func (e *MhrFhirError) Error() string {
	message := fmt.Sprintf(constvars.ErrDevMhrFhirFault, e.StatusCode)
	if e.OperationOutcome != nil {
		if diagnostics := e.OperationOutcome.Diagnostics(); diagnostics != "" {
			return fmt.Sprintf("%s: %s", message, diagnostics)
		}
	}
	if e.ResponseContent == "" {
		return message
	}
	return fmt.Sprintf("%s: %s", message, truncate(e.ResponseContent))
}

func (e *MhrFhirError) Unwrap() error {
	return &e.RestError
}
