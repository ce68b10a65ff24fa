package client

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/drivers/transport"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/mhr_fhir/clinical_documents"
	"mhr-fhir-client/internal/app/services/mhr_fhir/consumer_documents"
	"mhr-fhir-client/internal/app/services/mhr_fhir/generic_documents"
	"mhr-fhir-client/internal/app/services/mhr_fhir/identification"
	"mhr-fhir-client/internal/app/services/mhr_fhir/medicare_information"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/app/services/shared/rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
	"time"
)

// Capability is the set of persona-restricted operations a client may run.
type Capability uint8

const (
	CapabilityConsumer Capability = 1 << iota
	CapabilityProvider
)

func (c Capability) Has(capability Capability) bool {
	return c&capability == capability
}

func (c Capability) String() string {
	switch c {
	case CapabilityConsumer:
		return "consumer"
	case CapabilityProvider:
		return "provider"
	case CapabilityConsumer | CapabilityProvider:
		return "consumer|provider"
	}
	return "none"
}

type mhrFhirClient struct {
	Capabilities        Capability
	ClinicalDocuments   contracts.ClinicalDocumentsService
	GenericDocuments    contracts.GenericDocumentsService
	Identification      contracts.IdentificationService
	MedicareInformation contracts.MedicareInformationService
	ConsumerDocuments   contracts.ConsumerDocumentsService
	Log                 contracts.Logger
}

// NewConsumerClient builds a client for an individual accessing their own
// record through a consumer app.
func NewConsumerClient(endpoint models.EndpointConfig, transportConfig transport.Config, logger contracts.Logger) (contracts.MhrFhirConsumerClient, error) {
	restClient, err := newMhrFhirRestClient(endpoint, transportConfig, logger)
	if err != nil {
		return nil, err
	}
	return newMhrFhirClient(restClient, CapabilityConsumer, logger), nil
}

// NewProviderClient builds a client for a healthcare provider organisation.
// Set transportConfig.ClientCertificate to the organisation's certificate.
func NewProviderClient(endpoint models.EndpointConfig, transportConfig transport.Config, logger contracts.Logger) (contracts.MhrFhirProviderClient, error) {
	restClient, err := newMhrFhirRestClient(endpoint, transportConfig, logger)
	if err != nil {
		return nil, err
	}
	return newMhrFhirClient(restClient, CapabilityProvider, logger), nil
}

func newMhrFhirRestClient(endpoint models.EndpointConfig, transportConfig transport.Config, logger contracts.Logger) (contracts.MhrFhirRestClient, error) {
	httpClient := transport.NewHTTPClient(transportConfig)
	return mhr_rest.NewMhrFhirRestClient(endpoint, rest.NewRestClient(httpClient, logger), logger)
}

func newMhrFhirClient(restClient contracts.MhrFhirRestClient, capabilities Capability, logger contracts.Logger) *mhrFhirClient {
	return &mhrFhirClient{
		Capabilities:        capabilities,
		ClinicalDocuments:   clinical_documents.NewClinicalDocumentsFhirClient(restClient, logger),
		GenericDocuments:    generic_documents.NewGenericDocumentsFhirClient(restClient, logger),
		Identification:      identification.NewIdentificationFhirClient(restClient, logger),
		MedicareInformation: medicare_information.NewMedicareInformationFhirClient(restClient, logger),
		ConsumerDocuments:   consumer_documents.NewConsumerDocumentsFhirClient(restClient, logger),
		Log:                 logger,
	}
}

func (c *mhrFhirClient) require(ctx context.Context, capability Capability, operation string) error {
	if c.Capabilities.Has(capability) {
		return nil
	}
	c.Log.Warn("mhrFhirClient operation not permitted",
		constvars.LoggingRequestIDKey, utils.GetRequestID(ctx),
		constvars.LoggingCapabilityKey, c.Capabilities.String(),
		constvars.LoggingMethodKey, operation,
	)
	return exceptions.ErrCapabilityNotGranted(operation)
}

func (c *mhrFhirClient) GetPrescriptions(ctx context.Context, patientID string, dateWrittenFrom, dateWrittenTo *time.Time) (*fhir_dto.Bundle, error) {
	return c.ClinicalDocuments.GetPrescriptions(ctx, patientID, dateWrittenFrom, dateWrittenTo)
}

func (c *mhrFhirClient) GetDispenses(ctx context.Context, patientID string, dateHandedOverFrom, dateHandedOverTo *time.Time, includeAuthorizingPrescription bool) (*fhir_dto.Bundle, error) {
	return c.ClinicalDocuments.GetDispenses(ctx, patientID, dateHandedOverFrom, dateHandedOverTo, includeAuthorizingPrescription)
}

func (c *mhrFhirClient) GetSharedHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error) {
	return c.ClinicalDocuments.GetSharedHealthSummaryAllergies(ctx, patientID)
}

func (c *mhrFhirClient) GetDocument(ctx context.Context, patientID, documentID string) (*fhir_dto.Binary, error) {
	return c.GenericDocuments.GetDocument(ctx, patientID, documentID)
}

func (c *mhrFhirClient) SearchDocuments(ctx context.Context, patientID string, query *models.SearchQuery) (*fhir_dto.Bundle, error) {
	return c.GenericDocuments.SearchDocuments(ctx, patientID, query)
}

func (c *mhrFhirClient) GetPatientDetails(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	return c.Identification.GetPatientDetails(ctx, patientID)
}

func (c *mhrFhirClient) GetPbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error) {
	return c.MedicareInformation.GetPbsItems(ctx, patientID, createdFrom, createdTo)
}

func (c *mhrFhirClient) GetMbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error) {
	return c.MedicareInformation.GetMbsItems(ctx, patientID, createdFrom, createdTo)
}

func (c *mhrFhirClient) GetPersonalHealthSummaryMedications(ctx context.Context, patientID string) (*fhir_dto.Bundle, error) {
	return c.ConsumerDocuments.GetPersonalHealthSummaryMedications(ctx, patientID)
}

func (c *mhrFhirClient) GetPersonalHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error) {
	return c.ConsumerDocuments.GetPersonalHealthSummaryAllergies(ctx, patientID)
}

// Consumer only

func (c *mhrFhirClient) GetPatientDetailsBundle(ctx context.Context) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityConsumer, "GetPatientDetailsBundle"); err != nil {
		return nil, err
	}
	return c.Identification.GetPatientDetailsBundle(ctx)
}

func (c *mhrFhirClient) GetRecordList(ctx context.Context) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityConsumer, "GetRecordList"); err != nil {
		return nil, err
	}
	return c.Identification.GetRecordList(ctx)
}

func (c *mhrFhirClient) CreatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityConsumer, "CreatePersonalHealthSummaryMedications"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.CreatePersonalHealthSummaryMedications(ctx, medications)
}

func (c *mhrFhirClient) AddPersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error) {
	if err := c.require(ctx, CapabilityConsumer, "AddPersonalHealthSummaryMedication"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.AddPersonalHealthSummaryMedication(ctx, medication, docID)
}

func (c *mhrFhirClient) UpdatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityConsumer, "UpdatePersonalHealthSummaryMedications"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.UpdatePersonalHealthSummaryMedications(ctx, medications, docID)
}

func (c *mhrFhirClient) UpdatePersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error) {
	if err := c.require(ctx, CapabilityConsumer, "UpdatePersonalHealthSummaryMedication"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.UpdatePersonalHealthSummaryMedication(ctx, medication, docID)
}

func (c *mhrFhirClient) DeletePersonalHealthSummaryMedication(ctx context.Context, patientID, docID, medicationID string) error {
	if err := c.require(ctx, CapabilityConsumer, "DeletePersonalHealthSummaryMedication"); err != nil {
		return err
	}
	return c.ConsumerDocuments.DeletePersonalHealthSummaryMedication(ctx, patientID, docID, medicationID)
}

func (c *mhrFhirClient) CreatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityConsumer, "CreatePersonalHealthSummaryAllergies"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.CreatePersonalHealthSummaryAllergies(ctx, allergies)
}

func (c *mhrFhirClient) AddPersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error) {
	if err := c.require(ctx, CapabilityConsumer, "AddPersonalHealthSummaryAllergy"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.AddPersonalHealthSummaryAllergy(ctx, allergy, docID)
}

func (c *mhrFhirClient) UpdatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityConsumer, "UpdatePersonalHealthSummaryAllergies"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.UpdatePersonalHealthSummaryAllergies(ctx, allergies, docID)
}

func (c *mhrFhirClient) UpdatePersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error) {
	if err := c.require(ctx, CapabilityConsumer, "UpdatePersonalHealthSummaryAllergy"); err != nil {
		return nil, err
	}
	return c.ConsumerDocuments.UpdatePersonalHealthSummaryAllergy(ctx, allergy, docID)
}

func (c *mhrFhirClient) DeletePersonalHealthSummaryAllergy(ctx context.Context, patientID, docID, allergyIntoleranceID string) error {
	if err := c.require(ctx, CapabilityConsumer, "DeletePersonalHealthSummaryAllergy"); err != nil {
		return err
	}
	return c.ConsumerDocuments.DeletePersonalHealthSummaryAllergy(ctx, patientID, docID, allergyIntoleranceID)
}

// Provider only

func (c *mhrFhirClient) VerifyPatientExists(ctx context.Context, search *models.PatientSearch) (*fhir_dto.Bundle, error) {
	if err := c.require(ctx, CapabilityProvider, "VerifyPatientExists"); err != nil {
		return nil, err
	}
	return c.Identification.VerifyPatientExists(ctx, search)
}

func (c *mhrFhirClient) GainAccessToPatientRecord(ctx context.Context, patientID string, search *models.PatientSearch, accessType models.AccessType, accessCode *string) (*fhir_dto.Parameters, error) {
	if err := c.require(ctx, CapabilityProvider, "GainAccessToPatientRecord"); err != nil {
		return nil, err
	}
	return c.Identification.GainAccessToPatientRecord(ctx, patientID, search, accessType, accessCode)
}
