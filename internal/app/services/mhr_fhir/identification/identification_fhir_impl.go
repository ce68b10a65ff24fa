package identification

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
)

type identificationFhirClient struct {
	RestClient contracts.MhrFhirRestClient
	Log        contracts.Logger
}

func NewIdentificationFhirClient(restClient contracts.MhrFhirRestClient, logger contracts.Logger) contracts.IdentificationService {
	return &identificationFhirClient{
		RestClient: restClient,
		Log:        logger,
	}
}

func (c *identificationFhirClient) GetPatientDetails(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("identificationFhirClient.GetPatientDetails called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
	)

	if utils.IsBlank(patientID) {
		return nil, exceptions.ErrEmptyOrNull("patientId")
	}

	request := c.RestClient.CreateRequest(constvars.ResourcePatient+"/"+patientID, constvars.MethodGet)

	patient := new(fhir_dto.Patient)
	if err := c.RestClient.ExecuteRequest(ctx, request, patient); err != nil {
		c.Log.Error("identificationFhirClient.GetPatientDetails error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("identificationFhirClient.GetPatientDetails succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patient.ID,
	)
	return patient, nil
}

// GetPatientDetailsBundle returns every record the authenticated consumer
// can see, as a Bundle of Patient resources.
func (c *identificationFhirClient) GetPatientDetailsBundle(ctx context.Context) (*fhir_dto.Bundle, error) {
	return c.getBundle(ctx, "identificationFhirClient.GetPatientDetailsBundle", constvars.ResourcePatient)
}

// GetRecordList returns the representative relationships of the
// authenticated consumer.
func (c *identificationFhirClient) GetRecordList(ctx context.Context) (*fhir_dto.Bundle, error) {
	return c.getBundle(ctx, "identificationFhirClient.GetRecordList", constvars.ResourceRelatedPerson)
}

func (c *identificationFhirClient) getBundle(ctx context.Context, operation, resource string) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(operation+" called", constvars.LoggingRequestIDKey, requestID)

	request := c.RestClient.CreateRequest(resource, constvars.MethodGet)

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

// VerifyPatientExists looks a patient up by IHI, or by another identifier
// together with demographics. Only identifiers come back.
func (c *identificationFhirClient) VerifyPatientExists(ctx context.Context, search *models.PatientSearch) (*fhir_dto.Bundle, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("identificationFhirClient.VerifyPatientExists called", constvars.LoggingRequestIDKey, requestID)

	if search == nil {
		return nil, exceptions.ErrNull("patientSearch")
	}
	if search.Identifier == nil {
		return nil, exceptions.ErrNull("identifier")
	}
	if err := search.Validate(); err != nil {
		return nil, err
	}

	request := c.RestClient.CreateRequest(constvars.ResourcePatient, constvars.MethodGet)
	if search.Identifier.IsIhi() {
		request.AddQueryParameter(constvars.FhirParamIdentifier, search.Identifier.String())
	} else {
		request.AddQueryParameter(constvars.FhirParamCoverageID, search.Identifier.String())
	}
	if search.Birthdate != nil {
		request.AddQueryParameter(constvars.FhirParamBirthdate, utils.FormatFhirDate(search.Birthdate))
	}
	if search.Gender != nil {
		request.AddQueryParameter(constvars.FhirParamGender, string(*search.Gender))
	}
	if !utils.IsBlank(search.FamilyName) {
		request.AddQueryParameter(constvars.FhirParamFamily, search.FamilyName)
	}
	if !utils.IsBlank(search.GivenName) {
		request.AddQueryParameter(constvars.FhirParamGiven, search.GivenName)
	}
	request.AddQueryParameter(constvars.FhirParamElements, constvars.FhirValueIdentifier)

	bundle := new(fhir_dto.Bundle)
	if err := c.RestClient.ExecuteRequest(ctx, request, bundle); err != nil {
		c.Log.Error("identificationFhirClient.VerifyPatientExists error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("identificationFhirClient.VerifyPatientExists succeeded",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingResponseLengthKey, len(bundle.Entry),
	)
	return bundle, nil
}

// GainAccessToPatientRecord invokes $access on a known record, or on the
// record matching search when patientID is empty. For general access the
// gateway expects an empty, not absent, access code.
func (c *identificationFhirClient) GainAccessToPatientRecord(ctx context.Context, patientID string, search *models.PatientSearch, accessType models.AccessType, accessCode *string) (*fhir_dto.Parameters, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("identificationFhirClient.GainAccessToPatientRecord called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingPatientIDKey, patientID,
		constvars.LoggingAccessTypeKey, accessType,
	)

	hasIdentifier := search != nil && search.Identifier != nil
	if utils.IsBlank(patientID) && !hasIdentifier {
		return nil, exceptions.ErrInvalidArgument("patientId", constvars.ErrArgPatientIDOrSearchRequired)
	}
	if accessType == models.AccessTypeAccessCode && accessCode == nil {
		return nil, exceptions.ErrInvalidArgument("accessCode", constvars.ErrArgAccessCodeRequired)
	}
	if hasIdentifier {
		if err := search.Validate(); err != nil {
			return nil, err
		}
	}

	parameters, err := buildAccessParameters(search, accessType, accessCode)
	if err != nil {
		c.Log.Error("identificationFhirClient.GainAccessToPatientRecord error building parameters",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resourcePath := constvars.ResourcePatient + "/" + constvars.FhirOperationAccess
	if !utils.IsBlank(patientID) {
		resourcePath = constvars.ResourcePatient + "/" + patientID + "/" + constvars.FhirOperationAccess
	}
	request := c.RestClient.CreateRequest(resourcePath, constvars.MethodPost)
	if err := mhr_rest.SetResourceBody(request, parameters); err != nil {
		return nil, err
	}

	result := new(fhir_dto.Parameters)
	if err := c.RestClient.ExecuteRequest(ctx, request, result); err != nil {
		c.Log.Error("identificationFhirClient.GainAccessToPatientRecord error",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("identificationFhirClient.GainAccessToPatientRecord succeeded", constvars.LoggingRequestIDKey, requestID)
	return result, nil
}

func buildAccessParameters(search *models.PatientSearch, accessType models.AccessType, accessCode *string) (*fhir_dto.Parameters, error) {
	parameters := fhir_dto.NewParameters()

	if search != nil && search.Identifier != nil {
		if search.Identifier.IsIhi() {
			if err := parameters.AddResource(constvars.FhirParamSubject, ihiPatient(search.Identifier.Value)); err != nil {
				return nil, err
			}
		} else {
			parameters.AddValueString(constvars.FhirParamCoverageID, string(search.Identifier.Type))
		}
	}

	parameters.AddValueCode(constvars.FhirParamAccessType, string(accessType))
	if accessCode != nil {
		parameters.AddValueCode(constvars.FhirParamAccessCode, *accessCode)
	}

	if search != nil && search.HasDemographics() {
		if err := parameters.AddResource(constvars.FhirParamSubject, demographicPatient(search)); err != nil {
			return nil, err
		}
	}
	return parameters, nil
}

func ihiPatient(ihi string) *fhir_dto.Patient {
	patient := fhir_dto.NewPatient()
	patient.Identifier = []fhir_dto.Identifier{
		{
			System: constvars.IdentifierNamespaceIhi,
			Value:  ihi,
			Type: &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirIdentifierTypeSystem,
						Code:    constvars.FhirIdentifierTypeCodeNI,
						Display: constvars.FhirIdentifierTypeDisplayNI,
					},
				},
				Text: constvars.FhirIdentifierTypeTextIHI,
			},
		},
	}
	return patient
}

func demographicPatient(search *models.PatientSearch) *fhir_dto.Patient {
	patient := fhir_dto.NewPatient()

	name := fhir_dto.HumanName{}
	if !utils.IsBlank(search.FamilyName) {
		name.Family = []string{search.FamilyName}
	}
	if !utils.IsBlank(search.GivenName) {
		name.Given = []string{search.GivenName}
	}
	patient.Name = []fhir_dto.HumanName{name}

	if search.Gender != nil {
		patient.Gender = string(*search.Gender)
	}
	patient.BirthDate = utils.FormatFhirDate(search.Birthdate)
	return patient
}
