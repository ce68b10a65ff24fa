package clinical_documents

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
	"time"
)

// clinicalDocumentsFhirClient reads prescription, dispense and shared health
// summary records.
type clinicalDocumentsFhirClient struct {
	RestClient contracts.MhrFhirRestClient
	Log        contracts.Logger
}

func NewClinicalDocumentsFhirClient(restClient contracts.MhrFhirRestClient, logger contracts.Logger) contracts.ClinicalDocumentsService {
	return &clinicalDocumentsFhirClient{
		RestClient: restClient,
		Log:        logger,
	}
}

func (c *clinicalDocumentsFhirClient) GetPrescriptions(ctx context.Context, patientID string, dateWrittenFrom, dateWrittenTo *time.Time) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicalDocumentsFhirClient.GetPrescriptions called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}

	request := c.newPatientRequest(constvars.ResourceMedicationOrder, patientID)
	mhr_rest.AddDateRange(request, constvars.FhirParamDateWritten, dateWrittenFrom, dateWrittenTo)

	bundle := new(fhir_dto.Bundle)
	if err := c.RestClient.ExecuteRequest(ctx, request, bundle); err != nil {
		c.Log.Error("clinicalDocumentsFhirClient.GetPrescriptions error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("clinicalDocumentsFhirClient.GetPrescriptions succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResponseLengthKey, len(bundle.Entry),
	)
	return bundle, nil
}

func (c *clinicalDocumentsFhirClient) GetDispenses(ctx context.Context, patientID string, dateHandedOverFrom, dateHandedOverTo *time.Time, includeAuthorizingPrescription bool) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicalDocumentsFhirClient.GetDispenses called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}

	request := c.newPatientRequest(constvars.ResourceMedicationDispense, patientID)
	mhr_rest.AddDateRange(request, constvars.FhirParamWhenHandedOver, dateHandedOverFrom, dateHandedOverTo)
	if includeAuthorizingPrescription {
		request.AddQueryParameter(constvars.FhirParamInclude, constvars.FhirIncludeAuthorizingRx)
	}

	bundle := new(fhir_dto.Bundle)
	if err := c.RestClient.ExecuteRequest(ctx, request, bundle); err != nil {
		c.Log.Error("clinicalDocumentsFhirClient.GetDispenses error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("clinicalDocumentsFhirClient.GetDispenses succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResponseLengthKey, len(bundle.Entry),
	)
	return bundle, nil
}

// GetSharedHealthSummaryAllergies returns the allergies recorded by
// practitioners.
func (c *clinicalDocumentsFhirClient) GetSharedHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("clinicalDocumentsFhirClient.GetSharedHealthSummaryAllergies called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}

	request := c.newPatientRequest(constvars.ResourceAllergyIntolerance, patientID)
	request.AddQueryParameter(constvars.FhirParamReporterType, constvars.FhirValuePractitioner)

	bundle := new(fhir_dto.Bundle)
	if err := c.RestClient.ExecuteRequest(ctx, request, bundle); err != nil {
		c.Log.Error("clinicalDocumentsFhirClient.GetSharedHealthSummaryAllergies error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("clinicalDocumentsFhirClient.GetSharedHealthSummaryAllergies succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResponseLengthKey, len(bundle.Entry),
	)
	return bundle, nil
}

func (c *clinicalDocumentsFhirClient) newPatientRequest(resource, patientID string) *requests.RestRequest {
	request := c.RestClient.CreateRequest(resource, constvars.MethodGet)
	request.AddQueryParameter(constvars.FhirParamPatient, patientID)
	return request
}
