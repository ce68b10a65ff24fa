package models

import (
	"crypto/tls"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type ConsumerOAuthModel struct {
	ClientID         string `validate:"not_blank"`
	ClientSecret     string `validate:"not_blank"`
	RedirectURL      string `validate:"not_blank"`
	ScopeURL         string `validate:"not_blank"`
	LoginURL         string `validate:"not_blank,absolute_uri"`
	TokenEndpointURL string `validate:"not_blank,absolute_uri"`
}

func (m *ConsumerOAuthModel) Validate() error {
	if m == nil {
		return exceptions.ErrNull("consumerOAuthModel")
	}
	if err := utils.ValidateStruct(m); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

type ProviderOAuthModel struct {
	ClientID         string           `validate:"not_blank"`
	ClientSecret     string           `validate:"not_blank"`
	RedirectURL      string           `validate:"not_blank"`
	Hpio             string           `validate:"not_blank"`
	OrganisationName string           `validate:"not_blank"`
	DeviceID         string           `validate:"not_blank"`
	DeviceMake       string           `validate:"not_blank"`
	DeviceModel      string           `validate:"not_blank"`
	Certificate      *tls.Certificate `validate:"required"`
	TokenEndpointURL string           `validate:"not_blank,absolute_uri"`
}

func (m *ProviderOAuthModel) Validate() error {
	if m == nil {
		return exceptions.ErrNull("providerOAuthModel")
	}
	if err := utils.ValidateStruct(m); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

type OAuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
	// ExpiresIn keeps whatever the server sent, numeric or quoted.
	ExpiresIn string `json:"expires_in,omitempty"`
}

func (r *OAuthResponse) UnmarshalJSON(data []byte) error {
	var aux struct {
		AccessToken  string          `json:"access_token"`
		RefreshToken string          `json:"refresh_token"`
		TokenType    string          `json:"token_type"`
		Scope        string          `json:"scope"`
		ExpiresIn    json.RawMessage `json:"expires_in"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	expiresIn, err := rawExpiresIn(aux.ExpiresIn)
	if err != nil {
		return err
	}

	r.AccessToken = aux.AccessToken
	r.RefreshToken = aux.RefreshToken
	r.TokenType = aux.TokenType
	r.Scope = aux.Scope
	r.ExpiresIn = expiresIn
	return nil
}

func rawExpiresIn(value json.RawMessage) (string, error) {
	raw := strings.TrimSpace(string(value))
	switch {
	case raw == "" || raw == "null":
		return "", nil
	case strings.HasPrefix(raw, `"`):
		return strconv.Unquote(raw)
	}
	return raw, nil
}
