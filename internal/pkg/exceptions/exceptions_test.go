package exceptions

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMhrFhirError(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		wantDiagnostics string
		wantOutcome     bool
	}{
		{
			name:            "Bundle With Outcome Entry",
			status:          http.StatusBadRequest,
			body:            `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"invalid","diagnostics":"bad date"}]}},{"resource":{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"invalid","diagnostics":"ignored"}]}}]}`,
			wantDiagnostics: "bad date",
			wantOutcome:     true,
		},
		{
			name:            "Bare Outcome",
			status:          http.StatusUnauthorized,
			body:            `{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"security","diagnostics":"token expired"}]}`,
			wantDiagnostics: "token expired",
			wantOutcome:     true,
		},
		{
			name:   "Empty Bundle",
			status: http.StatusInternalServerError,
			body:   `{"resourceType":"Bundle","type":"collection"}`,
		},
		{
			name:   "Bundle Whose First Entry Is Not An Outcome",
			status: http.StatusInternalServerError,
			body:   `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Patient","id":"p"}}]}`,
		},
		{
			name:   "Other Resource",
			status: http.StatusConflict,
			body:   `{"resourceType":"Patient","id":"p"}`,
		},
		{
			name:   "Html Body",
			status: http.StatusServiceUnavailable,
			body:   `<html><body><h1>503 Service Unavailable</h1></body></html>`,
		},
		{
			name:   "Empty Body",
			status: http.StatusBadGateway,
			body:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMhrFhirError(tt.status, http.StatusText(tt.status), tt.body)

			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.body, err.ResponseContent)
			assert.Equal(t, http.StatusText(tt.status), err.StatusDescription)
			if !tt.wantOutcome {
				assert.Nil(t, err.OperationOutcome)
				return
			}
			require.NotNil(t, err.OperationOutcome)
			assert.Equal(t, tt.wantDiagnostics, err.OperationOutcome.Diagnostics())
			assert.Contains(t, err.Error(), tt.wantDiagnostics)
		})
	}
}

func TestMhrFhirErrorUnwrapsToRestError(t *testing.T) {
	var err error = NewMhrFhirError(http.StatusNotFound, "Not Found", "missing")

	var restErr *RestError
	require.True(t, errors.As(err, &restErr))
	assert.Equal(t, http.StatusNotFound, restErr.StatusCode)
	assert.Equal(t, "My Health Record request failed with status 404: missing", err.Error())
}

func TestRestErrorMessage(t *testing.T) {
	assert.Equal(t, "request failed with status 500", NewRestError(500, "").Error())

	long := strings.Repeat("x", maxBodyInErrorMessage+10)
	message := NewRestError(502, long).Error()
	assert.True(t, strings.HasSuffix(message, "..."))
	assert.Less(t, len(message), len(long)+40)
}

func TestNewOAuthProviderError(t *testing.T) {
	t.Run("Error And Description", func(t *testing.T) {
		err := NewOAuthProviderError(http.StatusBadRequest, `{"error":"invalid_grant","error_description":"assertion expired"}`)
		assert.Equal(t, "invalid_grant", err.ErrorCode)
		assert.Equal(t, "assertion expired", err.ErrorDescription)
		assert.Equal(t, "provider token request failed with status 400: invalid_grant: assertion expired", err.Error())
	})

	t.Run("Error Only", func(t *testing.T) {
		err := NewOAuthProviderError(http.StatusUnauthorized, `{"error":"invalid_client"}`)
		assert.Equal(t, "invalid_client", err.ErrorCode)
		assert.Empty(t, err.ErrorDescription)
		assert.Equal(t, "provider token request failed with status 401: invalid_client", err.Error())
	})

	t.Run("Unparseable Body Is Tolerated", func(t *testing.T) {
		err := NewOAuthProviderError(http.StatusBadGateway, `Bad Gateway`)
		assert.Empty(t, err.ErrorCode)
		assert.Empty(t, err.ErrorDescription)
		assert.Equal(t, "Bad Gateway", err.ResponseContent)
		assert.Equal(t, "provider token request failed with status 502: Bad Gateway", err.Error())

		var restErr *RestError
		assert.True(t, errors.As(error(err), &restErr))
	})
}

func TestArgumentErrors(t *testing.T) {
	err := ErrEmptyOrNull("patientId")
	assert.Equal(t, "patientId", err.Param)
	assert.Equal(t, "patientId must not be null or empty (parameter patientId)", err.Error())

	assert.Equal(t, "searchQuery must not be null", ErrNull("searchQuery").Message)
	assert.Equal(t, "custom", (&ArgumentError{Message: "custom"}).Error())
}

func TestCapabilityNotGranted(t *testing.T) {
	err := ErrCapabilityNotGranted("GainAccessToPatientRecord")
	assert.True(t, errors.Is(err, ErrOperationNotPermitted))
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Contains(t, err.DevMessage, "GainAccessToPatientRecord")
}
