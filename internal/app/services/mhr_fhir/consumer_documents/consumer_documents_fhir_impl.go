package consumer_documents

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
)

// phsResource describes one section of the consumer's personal health
// summary: the resource it holds and the query parameter that scopes it to
// patient-entered data.
type phsResource struct {
	Name      string
	TypeParam string
}

var (
	phsMedications = phsResource{Name: constvars.ResourceMedicationStatement, TypeParam: constvars.FhirParamSourceType}
	phsAllergies   = phsResource{Name: constvars.ResourceAllergyIntolerance, TypeParam: constvars.FhirParamReporterType}
)

type consumerDocumentsFhirClient struct {
	RestClient contracts.MhrFhirRestClient
	Log        contracts.Logger
}

func NewConsumerDocumentsFhirClient(restClient contracts.MhrFhirRestClient, logger contracts.Logger) contracts.ConsumerDocumentsService {
	return &consumerDocumentsFhirClient{
		RestClient: restClient,
		Log:        logger,
	}
}

func (c *consumerDocumentsFhirClient) GetPersonalHealthSummaryMedications(ctx context.Context, patientID string) (*fhir_dto.Bundle, error) {
	return c.getSummary(ctx, "consumerDocumentsFhirClient.GetPersonalHealthSummaryMedications", phsMedications, patientID)
}

func (c *consumerDocumentsFhirClient) CreatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle) (*fhir_dto.Bundle, error) {
	if medications == nil {
		return nil, exceptions.ErrNull("medications")
	}
	bundle := new(fhir_dto.Bundle)
	if err := c.write(ctx, "consumerDocumentsFhirClient.CreatePersonalHealthSummaryMedications", phsMedications, constvars.MethodPost, "", "", medications, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (c *consumerDocumentsFhirClient) AddPersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error) {
	if medication == nil {
		return nil, exceptions.ErrNull("medication")
	}
	if utils.IsBlank(docID) {
		return nil, exceptions.ErrEmptyOrNull("docId")
	}
	statement := new(fhir_dto.MedicationStatement)
	if err := c.write(ctx, "consumerDocumentsFhirClient.AddPersonalHealthSummaryMedication", phsMedications, constvars.MethodPost, "", docID, medication, statement); err != nil {
		return nil, err
	}
	return statement, nil
}

func (c *consumerDocumentsFhirClient) UpdatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error) {
	if medications == nil {
		return nil, exceptions.ErrNull("medications")
	}
	if utils.IsBlank(docID) {
		return nil, exceptions.ErrEmptyOrNull("docId")
	}
	bundle := new(fhir_dto.Bundle)
	if err := c.write(ctx, "consumerDocumentsFhirClient.UpdatePersonalHealthSummaryMedications", phsMedications, constvars.MethodPut, "", docID, medications, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// UpdatePersonalHealthSummaryMedication replaces the statement identified
// by medication.ID.
func (c *consumerDocumentsFhirClient) UpdatePersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error) {
	if medication == nil {
		return nil, exceptions.ErrNull("medication")
	}
	if utils.IsBlank(docID) {
		return nil, exceptions.ErrEmptyOrNull("docId")
	}
	if utils.IsBlank(medication.ID) {
		return nil, exceptions.ErrEmptyOrNull("medication.id")
	}
	statement := new(fhir_dto.MedicationStatement)
	if err := c.write(ctx, "consumerDocumentsFhirClient.UpdatePersonalHealthSummaryMedication", phsMedications, constvars.MethodPut, medication.ID, docID, medication, statement); err != nil {
		return nil, err
	}
	return statement, nil
}

func (c *consumerDocumentsFhirClient) DeletePersonalHealthSummaryMedication(ctx context.Context, patientID, docID, medicationID string) error {
	if utils.IsBlank(patientID) {
		return exceptions.ErrEmptyOrNull("patientId")
	}
	if utils.IsBlank(docID) {
		return exceptions.ErrEmptyOrNull("docId")
	}
	if utils.IsBlank(medicationID) {
		return exceptions.ErrEmptyOrNull("medicationId")
	}
	return c.delete(ctx, "consumerDocumentsFhirClient.DeletePersonalHealthSummaryMedication", phsMedications, patientID, docID, medicationID)
}

func (c *consumerDocumentsFhirClient) GetPersonalHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error) {
	return c.getSummary(ctx, "consumerDocumentsFhirClient.GetPersonalHealthSummaryAllergies", phsAllergies, patientID)
}

func (c *consumerDocumentsFhirClient) CreatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle) (*fhir_dto.Bundle, error) {
	if allergies == nil {
		return nil, exceptions.ErrNull("allergies")
	}
	bundle := new(fhir_dto.Bundle)
	if err := c.write(ctx, "consumerDocumentsFhirClient.CreatePersonalHealthSummaryAllergies", phsAllergies, constvars.MethodPost, "", "", allergies, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (c *consumerDocumentsFhirClient) AddPersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error) {
	if allergy == nil {
		return nil, exceptions.ErrNull("allergy")
	}
	if utils.IsBlank(docID) {
		return nil, exceptions.ErrEmptyOrNull("docId")
	}
	intolerance := new(fhir_dto.AllergyIntolerance)
	if err := c.write(ctx, "consumerDocumentsFhirClient.AddPersonalHealthSummaryAllergy", phsAllergies, constvars.MethodPost, "", docID, allergy, intolerance); err != nil {
		return nil, err
	}
	return intolerance, nil
}

func (c *consumerDocumentsFhirClient) UpdatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error) {
	if allergies == nil {
		return nil, exceptions.ErrNull("allergies")
	}
	if utils.IsBlank(docID) {
		return nil, exceptions.ErrEmptyOrNull("docId")
	}
	bundle := new(fhir_dto.Bundle)
	if err := c.write(ctx, "consumerDocumentsFhirClient.UpdatePersonalHealthSummaryAllergies", phsAllergies, constvars.MethodPut, "", docID, allergies, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (c *consumerDocumentsFhirClient) UpdatePersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error) {
	if allergy == nil {
		return nil, exceptions.ErrNull("allergy")
	}
	if utils.IsBlank(docID) {
		return nil, exceptions.ErrEmptyOrNull("docId")
	}
	if utils.IsBlank(allergy.ID) {
		return nil, exceptions.ErrEmptyOrNull("allergy.id")
	}
	intolerance := new(fhir_dto.AllergyIntolerance)
	if err := c.write(ctx, "consumerDocumentsFhirClient.UpdatePersonalHealthSummaryAllergy", phsAllergies, constvars.MethodPut, allergy.ID, docID, allergy, intolerance); err != nil {
		return nil, err
	}
	return intolerance, nil
}

func (c *consumerDocumentsFhirClient) DeletePersonalHealthSummaryAllergy(ctx context.Context, patientID, docID, allergyIntoleranceID string) error {
	if utils.IsBlank(patientID) {
		return exceptions.ErrEmptyOrNull("patientId")
	}
	if utils.IsBlank(docID) {
		return exceptions.ErrEmptyOrNull("docId")
	}
	if utils.IsBlank(allergyIntoleranceID) {
		return exceptions.ErrEmptyOrNull("allergyIntoleranceId")
	}
	return c.delete(ctx, "consumerDocumentsFhirClient.DeletePersonalHealthSummaryAllergy", phsAllergies, patientID, docID, allergyIntoleranceID)
}

func (c *consumerDocumentsFhirClient) getSummary(ctx context.Context, operation string, section phsResource, patientID string) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}

	request := c.RestClient.CreateRequest(section.Name, constvars.MethodGet)
	request.AddQueryParameter(constvars.FhirParamPatient, patientID)
	request.AddQueryParameter(section.TypeParam, constvars.FhirValuePatient)

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

// write sends body to the section, or to one of its resources when
// resourceID is set. An empty docID is left off the query.
func (c *consumerDocumentsFhirClient) write(ctx context.Context, operation string, section phsResource, method, resourceID, docID string, body, out fhir_dto.Resource) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingDocumentIDKey, docID,
		constvars.LoggingResourceIDKey, resourceID,
	)

	resourcePath := section.Name
	if resourceID != "" {
		resourcePath += "/" + resourceID
	}

	request := c.RestClient.CreateRequest(resourcePath, method)
	request.AddQueryParameter(section.TypeParam, constvars.FhirValuePatient)
	if docID != "" {
		request.AddQueryParameter(constvars.FhirParamDocID, docID)
	}
	if err := mhr_rest.SetResourceBody(request, body); err != nil {
		c.Log.Error(operation+" error encoding body",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return err
	}

	if err := c.RestClient.ExecuteRequest(ctx, request, out); err != nil {
		c.Log.Error(operation+" error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return err
	}

	c.Log.Info(operation+" succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResourceIDKey, out.Base().ID,
	)
	return nil
}

func (c *consumerDocumentsFhirClient) delete(ctx context.Context, operation string, section phsResource, patientID, docID, resourceID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
		constvars.LoggingDocumentIDKey, docID,
		constvars.LoggingResourceIDKey, resourceID,
	)

	request := c.RestClient.CreateRequest(section.Name+"/"+resourceID, constvars.MethodDelete)
	request.AddQueryParameter(section.TypeParam, constvars.FhirValuePatient)
	request.AddQueryParameter(constvars.FhirParamDocID, docID)
	request.AddQueryParameter(constvars.FhirParamPatient, patientID)

	if err := c.RestClient.ExecuteRequestWithoutResult(ctx, request); err != nil {
		c.Log.Error(operation+" error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return err
	}

	c.Log.Info(operation+" succeeded", constvars.LoggingRequestIDKey, requestID)
	return nil
}
