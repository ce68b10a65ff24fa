package exceptions

import (
	"fmt"
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// OAuthProviderError is returned when the provider token endpoint rejects a
// JWT-bearer exchange.
type OAuthProviderError struct {
	RestError
	ErrorCode        string
	ErrorDescription string
}

type oauthErrorBody struct {
	Error            *string `json:"error,omitempty"`
	ErrorDescription *string `json:"error_description,omitempty"`
}

// NewOAuthProviderError extracts error and error_description when the body
// is a JSON object holding them. Anything else leaves both fields empty.
func NewOAuthProviderError(statusCode int, responseContent string) *OAuthProviderError {
	providerErr := &OAuthProviderError{
		RestError: RestError{
			StatusCode:      statusCode,
			ResponseContent: responseContent,
		},
	}

	var body oauthErrorBody
	if err := json.Unmarshal([]byte(responseContent), &body); err != nil {
		return providerErr
	}
	if body.Error != nil {
		providerErr.ErrorCode = *body.Error
	}
	if body.ErrorDescription != nil {
		providerErr.ErrorDescription = *body.ErrorDescription
	}
	return providerErr
}

func (e *OAuthProviderError) Error() string {
	message := fmt.Sprintf(constvars.ErrDevOAuthProviderFault, e.StatusCode)
	switch {
	case e.ErrorCode != "" && e.ErrorDescription != "":
		return fmt.Sprintf("%s: %s: %s", message, e.ErrorCode, e.ErrorDescription)
	case e.ErrorCode != "":
		return fmt.Sprintf("%s: %s", message, e.ErrorCode)
	case e.ResponseContent != "":
		return fmt.Sprintf("%s: %s", message, truncate(e.ResponseContent))
	}
	return message
}

func (e *OAuthProviderError) Unwrap() error {
	return &e.RestError
}
