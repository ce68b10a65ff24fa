package models

import (
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
)

// EndpointConfig is fixed once a client has been built from it.
type EndpointConfig struct {
	BaseURL     string `validate:"not_blank,absolute_uri"`
	BearerToken string
	ClientID    string
	AppVersion  string
}

func (c EndpointConfig) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
