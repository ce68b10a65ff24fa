package exceptions

import (
	"errors"
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"
)

var ErrOperationNotPermitted = errors.New("operation not permitted for this client")

var (
	// Arguments
	ErrEmptyOrNull = func(param string) *ArgumentError {
		return &ArgumentError{Param: param, Message: fmt.Sprintf(constvars.ErrArgEmptyOrNull, param)}
	}
	ErrNull = func(param string) *ArgumentError {
		return &ArgumentError{Param: param, Message: fmt.Sprintf(constvars.ErrArgNull, param)}
	}
	ErrInvalidArgument = func(param, message string) *ArgumentError {
		return &ArgumentError{Param: param, Message: message}
	}
	ErrInputValidation = func(err error) *ArgumentError {
		return &ArgumentError{Param: FirstValidationErrorField(err), Message: FormatFirstValidationError(err)}
	}

	// Capabilities
	ErrCapabilityNotGranted = func(operation string) *CustomError {
		return BuildNewCustomError(ErrOperationNotPermitted, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrArgCapabilityNotGranted, operation))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrCannotReadResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotReadResponse)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// FHIR
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeFHIRResource, resource))
	}

	// OAuth
	ErrDecodeOAuthResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDecodeOAuthResponse)
	}
	ErrSignProviderAssertion = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSignProviderAssertion)
	}
)
