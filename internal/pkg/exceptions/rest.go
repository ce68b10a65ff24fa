package exceptions

import (
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"
)

const maxBodyInErrorMessage = 512

// RestError is the transport fault raised for any non-2xx response. The body
// is kept verbatim so higher layers can reinterpret it.
type RestError struct {
	StatusCode      int
	ResponseContent string
}

func NewRestError(statusCode int, responseContent string) *RestError {
	return &RestError{
		StatusCode:      statusCode,
		ResponseContent: responseContent,
	}
}

func (e *RestError) Error() string {
	message := fmt.Sprintf(constvars.ErrDevTransportFault, e.StatusCode)
	if e.ResponseContent == "" {
		return message
	}
	return fmt.Sprintf("%s: %s", message, truncate(e.ResponseContent))
}

func truncate(s string) string {
	if len(s) <= maxBodyInErrorMessage {
		return s
	}
	return s[:maxBodyInErrorMessage] + "..."
}
