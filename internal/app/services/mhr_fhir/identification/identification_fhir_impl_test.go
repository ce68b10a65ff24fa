package identification

import (
	"context"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/mhr_fhir/fhirtest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIhi        = "8003608166690503"
	parametersBody = `{"resourceType":"Parameters","parameter":[{"name":"patient","valueString":"Patient/1"}]}`
)

func demographicSearch(t *testing.T) *models.PatientSearch {
	t.Helper()
	search, err := models.NewDemographicPatientSearch(
		models.NewIdentifier("2950156481", models.IdentifierTypeMedicareCardNumber),
		time.Date(1970, 5, 6, 0, 0, 0, 0, time.UTC),
		models.GenderFemale,
		"Citizen",
		"Jane",
	)
	require.NoError(t, err)
	return search
}

func TestGetPatientDetails(t *testing.T) {
	server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Patient","id":"p-1","name":[{"family":["Citizen"],"given":["Jane"]}]}`)
	client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

	patient, err := client.GetPatientDetails(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", patient.ID)
	require.Len(t, patient.Name, 1)
	assert.Equal(t, []string{"Citizen"}, patient.Name[0].Family)
	assert.Equal(t, "/fhir/Patient/p-1", server.LastRequest(t).Path)

	_, err = client.GetPatientDetails(context.Background(), "")
	var argErr *exceptions.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "patientId", argErr.Param)
}

func TestConsumerListings(t *testing.T) {
	server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Bundle","type":"searchset"}`)
	client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

	_, err := client.GetPatientDetailsBundle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/fhir/Patient", server.LastRequest(t).Path)
	assert.Empty(t, server.LastRequest(t).RawQuery)

	_, err = client.GetRecordList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/fhir/RelatedPerson", server.LastRequest(t).Path)
}

func TestVerifyPatientExists(t *testing.T) {
	t.Run("By Ihi", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Bundle","type":"searchset"}`)
		client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

		search, err := models.NewIhiPatientSearch(testIhi)
		require.NoError(t, err)

		_, err = client.VerifyPatientExists(context.Background(), search)
		require.NoError(t, err)

		request := server.LastRequest(t)
		assert.Equal(t, "/fhir/Patient", request.Path)
		assert.Equal(t, []string{
			"identifier=http://ns.electronichealth.net.au/id/hi/ihi/1.0|" + testIhi,
			"_elements=identifier",
		}, request.QueryPairs())
	})

	t.Run("By Medicare Number And Demographics", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Bundle","type":"searchset"}`)
		client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

		_, err := client.VerifyPatientExists(context.Background(), demographicSearch(t))
		require.NoError(t, err)

		assert.Equal(t, []string{
			"coverageId=http://ns.electronichealth.net.au/id/hi/mc|2950156481",
			"birthdate=1970-05-06",
			"gender=female",
			"family=Citizen",
			"given=Jane",
			"_elements=identifier",
		}, server.LastRequest(t).QueryPairs())
	})

	female := models.GenderFemale
	invalid := []struct {
		name    string
		search  *models.PatientSearch
		wantMsg string
	}{
		{"Nil Search", nil, "patientSearch must not be null"},
		{"Nil Identifier", &models.PatientSearch{FamilyName: "Citizen"}, "identifier must not be null"},
		{"Ihi With Demographics", &models.PatientSearch{Identifier: models.NewIdentifier(testIhi, models.IdentifierTypeIhi), Gender: &female}, constvars.ErrArgIhiWithDemographic},
		{"Medicare Without Demographics", &models.PatientSearch{Identifier: models.NewIdentifier("2950156481", models.IdentifierTypeMedicareCardNumber), FamilyName: "Citizen"}, constvars.ErrArgNoIhi},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			server := fhirtest.NewServer(t, http.StatusOK, `{}`)
			client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

			_, err := client.VerifyPatientExists(context.Background(), tt.search)
			var argErr *exceptions.ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantMsg, argErr.Message)
			assert.Empty(t, server.Requests())
		})
	}
}

func decodeParameters(t *testing.T, body []byte) *fhir_dto.Parameters {
	t.Helper()
	parameters := new(fhir_dto.Parameters)
	require.NoError(t, fhir_dto.UnmarshalResource(body, parameters))
	return parameters
}

func TestGainAccessToPatientRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Known Record With Access Code", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, parametersBody)
		client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

		code := "1234"
		result, err := client.GainAccessToPatientRecord(ctx, "p-1", nil, models.AccessTypeAccessCode, &code)
		require.NoError(t, err)
		require.Len(t, result.Parameter, 1)

		request := server.LastRequest(t)
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/fhir/Patient/p-1/$access", request.Path)
		assert.Equal(t, "application/json+fhir", request.Header.Get("Content-Type"))
		assert.JSONEq(t, `{
			"resourceType": "Parameters",
			"parameter": [
				{"name": "accessType", "valueCode": "AccessCode"},
				{"name": "accessCode", "valueCode": "1234"}
			]
		}`, string(request.Body))
	})

	t.Run("Ihi Search", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, parametersBody)
		client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

		search, err := models.NewIhiPatientSearch(testIhi)
		require.NoError(t, err)
		empty := ""

		_, err = client.GainAccessToPatientRecord(ctx, "", search, models.AccessTypeGeneralAccess, &empty)
		require.NoError(t, err)

		request := server.LastRequest(t)
		assert.Equal(t, "/fhir/Patient/$access", request.Path)

		parameters := decodeParameters(t, request.Body)
		require.Len(t, parameters.Parameter, 3)
		assert.Equal(t, "subject", parameters.Parameter[0].Name)
		assert.Equal(t, "accessType", parameters.Parameter[1].Name)
		assert.Equal(t, "GeneralAccess", *parameters.Parameter[1].ValueCode)
		assert.Equal(t, "accessCode", parameters.Parameter[2].Name)
		assert.Equal(t, "", *parameters.Parameter[2].ValueCode)

		subject := new(fhir_dto.Patient)
		require.NoError(t, json.Unmarshal(parameters.Parameter[0].Resource, subject))
		require.Len(t, subject.Identifier, 1)
		identifier := subject.Identifier[0]
		assert.Equal(t, "http://ns.electronichealth.net.au/id/hi/ihi/1.0", identifier.System)
		assert.Equal(t, testIhi, identifier.Value)
		require.NotNil(t, identifier.Type)
		assert.Equal(t, "IHI", identifier.Type.Text)
		assert.Equal(t, []fhir_dto.Coding{{
			System:  "http://hl7.org/fhir/v2/0203",
			Code:    "NI",
			Display: "National unique individual identifier",
		}}, identifier.Type.Coding)
	})

	t.Run("Demographic Search", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, parametersBody)
		client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

		_, err := client.GainAccessToPatientRecord(ctx, "", demographicSearch(t), models.AccessTypeEmergencyAccess, nil)
		require.NoError(t, err)

		parameters := decodeParameters(t, server.LastRequest(t).Body)
		require.Len(t, parameters.Parameter, 3)
		assert.Equal(t, "coverageId", parameters.Parameter[0].Name)
		assert.Equal(t, "MedicareCardNumber", *parameters.Parameter[0].ValueString)
		assert.Equal(t, "EmergencyAccess", *parameters.Parameter[1].ValueCode)
		assert.Empty(t, parameters.Get("accessCode"))

		subject := new(fhir_dto.Patient)
		require.NoError(t, json.Unmarshal(parameters.Parameter[2].Resource, subject))
		assert.Equal(t, "female", subject.Gender)
		assert.Equal(t, "1970-05-06", subject.BirthDate)
		assert.Equal(t, []fhir_dto.HumanName{{Family: []string{"Citizen"}, Given: []string{"Jane"}}}, subject.Name)
	})

	female := models.GenderFemale
	invalid := []struct {
		name       string
		patientID  string
		search     *models.PatientSearch
		accessType models.AccessType
		wantMsg    string
	}{
		{"Neither Id Nor Search", "", nil, models.AccessTypeGeneralAccess, constvars.ErrArgPatientIDOrSearchRequired},
		{"Search Without Identifier", "", &models.PatientSearch{FamilyName: "Citizen"}, models.AccessTypeGeneralAccess, constvars.ErrArgPatientIDOrSearchRequired},
		{"Access Code Missing", "p-1", nil, models.AccessTypeAccessCode, constvars.ErrArgAccessCodeRequired},
		{"Ihi With Demographics", "", &models.PatientSearch{Identifier: models.NewIdentifier(testIhi, models.IdentifierTypeIhi), Gender: &female}, models.AccessTypeGeneralAccess, constvars.ErrArgIhiWithDemographic},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			server := fhirtest.NewServer(t, http.StatusOK, parametersBody)
			client := NewIdentificationFhirClient(server.RestClient(t), logger.NewNopLogger())

			_, err := client.GainAccessToPatientRecord(ctx, tt.patientID, tt.search, tt.accessType, nil)
			var argErr *exceptions.ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantMsg, argErr.Message)
			assert.Empty(t, server.Requests())
		})
	}
}
