package main

import (
	"crypto/tls"
	"fmt"
	"mhr-fhir-client/internal/app/config"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/drivers/transport"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/mhr_fhir/client"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"strings"
)

func transportConfig(bootstrap *config.Bootstrap) transport.Config {
	return transport.Config{
		Timeout:            bootstrap.InternalConfig.MHR.Timeout,
		InsecureSkipVerify: bootstrap.InternalConfig.MHR.InsecureSkipVerify,
		MaxIdleConns:       bootstrap.DriverConfig.HTTP.MaxIdleConns,
		IdleConnTimeout:    bootstrap.DriverConfig.HTTP.IdleConnTimeout,
	}
}

func loadCertificate(bootstrap *config.Bootstrap) (*tls.Certificate, error) {
	mhr := bootstrap.InternalConfig.MHR
	return transport.LoadClientCertificate(mhr.CertificatePath, mhr.CertificatePassword)
}

// newRecordsClient builds the client for the configured persona. Provider
// clients present the organisation certificate.
func newRecordsClient(bootstrap *config.Bootstrap) (contracts.MhrFhirBaseClient, error) {
	mhr := bootstrap.InternalConfig.MHR
	endpoint := models.EndpointConfig{
		BaseURL:     mhr.BaseUrl,
		BearerToken: mhr.BearerToken,
		ClientID:    mhr.ClientID,
		AppVersion:  mhr.AppVersion,
	}
	httpConfig := transportConfig(bootstrap)

	switch strings.ToLower(strings.TrimSpace(mhr.Persona)) {
	case constvars.PersonaConsumer:
		return client.NewConsumerClient(endpoint, httpConfig, bootstrap.Logger)
	case constvars.PersonaProvider:
		certificate, err := loadCertificate(bootstrap)
		if err != nil {
			return nil, err
		}
		httpConfig.ClientCertificate = certificate
		return client.NewProviderClient(endpoint, httpConfig, bootstrap.Logger)
	}
	return nil, exceptions.ErrInvalidArgument("persona", fmt.Sprintf(constvars.ErrArgUnknownPersona, mhr.Persona))
}

func asConsumer(recordsClient contracts.MhrFhirBaseClient, operation string) (contracts.MhrFhirConsumerClient, error) {
	consumer, ok := recordsClient.(contracts.MhrFhirConsumerClient)
	if !ok {
		return nil, exceptions.ErrCapabilityNotGranted(operation)
	}
	return consumer, nil
}

func asProvider(recordsClient contracts.MhrFhirBaseClient, operation string) (contracts.MhrFhirProviderClient, error) {
	provider, ok := recordsClient.(contracts.MhrFhirProviderClient)
	if !ok {
		return nil, exceptions.ErrCapabilityNotGranted(operation)
	}
	return provider, nil
}
