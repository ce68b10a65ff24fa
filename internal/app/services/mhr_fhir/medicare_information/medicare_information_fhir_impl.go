package medicare_information

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
	"time"
)

type medicareInformationFhirClient struct {
	RestClient contracts.MhrFhirRestClient
	Log        contracts.Logger
}

func NewMedicareInformationFhirClient(restClient contracts.MhrFhirRestClient, logger contracts.Logger) contracts.MedicareInformationService {
	return &medicareInformationFhirClient{
		RestClient: restClient,
		Log:        logger,
	}
}

// GetPbsItems lists Pharmaceutical Benefits Scheme claims.
func (c *medicareInformationFhirClient) GetPbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error) {
	return c.getMedicareItems(ctx, "medicareInformationFhirClient.GetPbsItems", patientID, createdFrom, createdTo, constvars.FhirValuePBS)
}

// GetMbsItems lists Medicare Benefits Schedule claims.
func (c *medicareInformationFhirClient) GetMbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error) {
	return c.getMedicareItems(ctx, "medicareInformationFhirClient.GetMbsItems", patientID, createdFrom, createdTo, constvars.FhirValueMBS)
}

func (c *medicareInformationFhirClient) getMedicareItems(ctx context.Context, operation, patientID string, createdFrom, createdTo *time.Time, coveragePlan string) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}

	request := c.RestClient.CreateRequest(constvars.ResourceExplanationOfBenefit, constvars.MethodGet)
	request.AddQueryParameter(constvars.FhirParamPatientReference, patientID)
	request.AddQueryParameter(constvars.FhirParamCoveragePlan, coveragePlan)
	mhr_rest.AddDateRange(request, constvars.FhirParamCreated, createdFrom, createdTo)

	bundle := new(fhir_dto.Bundle)
	if err := c.RestClient.ExecuteRequest(ctx, request, bundle); err != nil {
		c.Log.Error(operation+" error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info(operation+" succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResponseLengthKey, len(bundle.Entry),
	)
	return bundle, nil
}
