package generic_documents

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
	"strings"
)

type genericDocumentsFhirClient struct {
	RestClient contracts.MhrFhirRestClient
	Log        contracts.Logger
}

func NewGenericDocumentsFhirClient(restClient contracts.MhrFhirRestClient, logger contracts.Logger) contracts.GenericDocumentsService {
	return &genericDocumentsFhirClient{
		RestClient: restClient,
		Log:        logger,
	}
}

// GetDocument downloads one document as a Binary resource.
func (c *genericDocumentsFhirClient) GetDocument(ctx context.Context, patientID, documentID string) (*fhir_dto.Binary, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("genericDocumentsFhirClient.GetDocument called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
		constvars.LoggingDocumentIDKey, documentID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}
	if utils.IsBlank(documentID) {
		return nil, exceptions.ErrEmptyOrNull("documentId")
	}

	request := c.RestClient.CreateRequest(constvars.ResourceBinary+"/"+documentID, constvars.MethodGet)
	request.AddQueryParameter(constvars.FhirParamPatient, patientID)

	binary := new(fhir_dto.Binary)
	if err := c.RestClient.ExecuteRequest(ctx, request, binary); err != nil {
		c.Log.Error("genericDocumentsFhirClient.GetDocument error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("genericDocumentsFhirClient.GetDocument succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingDocumentIDKey, documentID,
	)
	return binary, nil
}

// SearchDocuments finds DocumentReferences either by document identifier
// alone or by class and type codes with optional filters.
func (c *genericDocumentsFhirClient) SearchDocuments(ctx context.Context, patientID string, query *models.SearchQuery) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("genericDocumentsFhirClient.SearchDocuments called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}
	if query == nil {
		return nil, exceptions.ErrNull("searchQuery")
	}
	if err := validateSearchQuery(query); err != nil {
		return nil, err
	}

	request := c.RestClient.CreateRequest(constvars.ResourceDocumentReference, constvars.MethodGet)
	request.AddQueryParameter(constvars.FhirParamPatient, patientID)
	if !utils.IsBlank(query.Identifier) {
		request.AddQueryParameter(constvars.FhirParamIdentifier, query.Identifier)
	}
	if len(query.ClassCodes) > 0 {
		request.AddQueryParameter(constvars.FhirParamClass, joinCodedValues(query.ClassCodes))
	}
	if len(query.TypeCodes) > 0 {
		request.AddQueryParameter(constvars.FhirParamType, joinCodedValues(query.TypeCodes))
	}
	mhr_rest.AddDateRange(request, constvars.FhirParamCreated, query.StartDate, query.EndDate)
	if !utils.IsBlank(query.Author) {
		request.AddQueryParameter(constvars.FhirParamAuthor, query.Author)
	}
	if query.Status != nil {
		request.AddQueryParameter(constvars.FhirParamStatus, string(*query.Status))
	}
	if !utils.IsBlank(query.SlotName) {
		request.AddQueryParameter(constvars.FhirParamSlotName, query.SlotName)
	}
	if !utils.IsBlank(query.SlotValue) {
		request.AddQueryParameter(constvars.FhirParamSlotValue, query.SlotValue)
	}

	bundle := new(fhir_dto.Bundle)
	if err := c.RestClient.ExecuteRequest(ctx, request, bundle); err != nil {
		c.Log.Error("genericDocumentsFhirClient.SearchDocuments error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("genericDocumentsFhirClient.SearchDocuments succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResponseLengthKey, len(bundle.Entry),
	)
	return bundle, nil
}

// validateSearchQuery accepts an identifier on its own, or class/type codes
// with any other filters.
func validateSearchQuery(query *models.SearchQuery) error {
	if !utils.IsBlank(query.Identifier) {
		if query.HasCriteriaBesidesIdentifier() {
			return exceptions.ErrInvalidArgument("searchQuery", constvars.ErrArgIdentifierSearch)
		}
		return nil
	}
	if !query.HasClassOrTypeCode() {
		return exceptions.ErrInvalidArgument("searchQuery", constvars.ErrArgClassOrTypeCodeRequired)
	}
	return nil
}

func joinCodedValues(values []models.CodedValue) string {
	rendered := make([]string, 0, len(values))
	for _, value := range values {
		rendered = append(rendered, value.String())
	}
	return strings.Join(rendered, ",")
}
