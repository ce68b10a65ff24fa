package contracts

import (
	"context"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"time"
)

// MhrFhirRestClient builds and executes requests against the My Health
// Record FHIR gateway.
type MhrFhirRestClient interface {
	CreateRequest(resourcePath, method string) *requests.RestRequest
	ExecuteRequest(ctx context.Context, request *requests.RestRequest, out fhir_dto.Resource) error
	ExecuteRequestWithoutResult(ctx context.Context, request *requests.RestRequest) error
}

type ClinicalDocumentsService interface {
	GetPrescriptions(ctx context.Context, patientID string, dateWrittenFrom, dateWrittenTo *time.Time) (*fhir_dto.Bundle, error)
	GetDispenses(ctx context.Context, patientID string, dateHandedOverFrom, dateHandedOverTo *time.Time, includeAuthorizingPrescription bool) (*fhir_dto.Bundle, error)
	GetSharedHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error)
}

type GenericDocumentsService interface {
	GetDocument(ctx context.Context, patientID, documentID string) (*fhir_dto.Binary, error)
	SearchDocuments(ctx context.Context, patientID string, query *models.SearchQuery) (*fhir_dto.Bundle, error)
}

type IdentificationService interface {
	GetPatientDetails(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	GetPatientDetailsBundle(ctx context.Context) (*fhir_dto.Bundle, error)
	GetRecordList(ctx context.Context) (*fhir_dto.Bundle, error)
	VerifyPatientExists(ctx context.Context, search *models.PatientSearch) (*fhir_dto.Bundle, error)
	GainAccessToPatientRecord(ctx context.Context, patientID string, search *models.PatientSearch, accessType models.AccessType, accessCode *string) (*fhir_dto.Parameters, error)
}

type MedicareInformationService interface {
	GetPbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error)
	GetMbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error)
}

type ConsumerDocumentsService interface {
	GetPersonalHealthSummaryMedications(ctx context.Context, patientID string) (*fhir_dto.Bundle, error)
	CreatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle) (*fhir_dto.Bundle, error)
	AddPersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error)
	UpdatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error)
	UpdatePersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error)
	DeletePersonalHealthSummaryMedication(ctx context.Context, patientID, docID, medicationID string) error

	GetPersonalHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error)
	CreatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle) (*fhir_dto.Bundle, error)
	AddPersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error)
	UpdatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error)
	UpdatePersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error)
	DeletePersonalHealthSummaryAllergy(ctx context.Context, patientID, docID, allergyIntoleranceID string) error
}

// MhrFhirBaseClient holds the operations open to both personas.
type MhrFhirBaseClient interface {
	GetPrescriptions(ctx context.Context, patientID string, dateWrittenFrom, dateWrittenTo *time.Time) (*fhir_dto.Bundle, error)
	GetDispenses(ctx context.Context, patientID string, dateHandedOverFrom, dateHandedOverTo *time.Time, includeAuthorizingPrescription bool) (*fhir_dto.Bundle, error)
	GetSharedHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error)
	GetDocument(ctx context.Context, patientID, documentID string) (*fhir_dto.Binary, error)
	SearchDocuments(ctx context.Context, patientID string, query *models.SearchQuery) (*fhir_dto.Bundle, error)
	GetPatientDetails(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	GetPbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error)
	GetMbsItems(ctx context.Context, patientID string, createdFrom, createdTo *time.Time) (*fhir_dto.Bundle, error)
	GetPersonalHealthSummaryMedications(ctx context.Context, patientID string) (*fhir_dto.Bundle, error)
	GetPersonalHealthSummaryAllergies(ctx context.Context, patientID string) (*fhir_dto.Bundle, error)
}

type MhrFhirConsumerClient interface {
	MhrFhirBaseClient
	GetPatientDetailsBundle(ctx context.Context) (*fhir_dto.Bundle, error)
	GetRecordList(ctx context.Context) (*fhir_dto.Bundle, error)
	CreatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle) (*fhir_dto.Bundle, error)
	AddPersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error)
	UpdatePersonalHealthSummaryMedications(ctx context.Context, medications *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error)
	UpdatePersonalHealthSummaryMedication(ctx context.Context, medication *fhir_dto.MedicationStatement, docID string) (*fhir_dto.MedicationStatement, error)
	DeletePersonalHealthSummaryMedication(ctx context.Context, patientID, docID, medicationID string) error
	CreatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle) (*fhir_dto.Bundle, error)
	AddPersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error)
	UpdatePersonalHealthSummaryAllergies(ctx context.Context, allergies *fhir_dto.Bundle, docID string) (*fhir_dto.Bundle, error)
	UpdatePersonalHealthSummaryAllergy(ctx context.Context, allergy *fhir_dto.AllergyIntolerance, docID string) (*fhir_dto.AllergyIntolerance, error)
	DeletePersonalHealthSummaryAllergy(ctx context.Context, patientID, docID, allergyIntoleranceID string) error
}

type MhrFhirProviderClient interface {
	MhrFhirBaseClient
	VerifyPatientExists(ctx context.Context, search *models.PatientSearch) (*fhir_dto.Bundle, error)
	GainAccessToPatientRecord(ctx context.Context, patientID string, search *models.PatientSearch, accessType models.AccessType, accessCode *string) (*fhir_dto.Parameters, error)
}
