package medicare_information

import (
	"context"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/app/services/mhr_fhir/fhirtest"
	"mhr-fhir-client/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicareItems(t *testing.T) {
	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	body := `{"resourceType":"Bundle","type":"searchset","entry":[{"resource":{"resourceType":"ExplanationOfBenefit","id":"eob-1"}}]}`

	t.Run("Pbs", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, body)
		client := NewMedicareInformationFhirClient(server.RestClient(t), logger.NewNopLogger())

		bundle, err := client.GetPbsItems(context.Background(), "p-1", &from, &to)
		require.NoError(t, err)
		assert.Len(t, bundle.Entry, 1)

		request := server.LastRequest(t)
		assert.Equal(t, "/fhir/ExplanationOfBenefit", request.Path)
		assert.Equal(t, []string{
			"patientreference=p-1",
			"coverage.plan=PBS",
			"created=ge2022-01-01",
			"created=le2022-06-30",
		}, request.QueryPairs())
	})

	t.Run("Mbs", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, body)
		client := NewMedicareInformationFhirClient(server.RestClient(t), logger.NewNopLogger())

		_, err := client.GetMbsItems(context.Background(), "p-1", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"patientreference=p-1", "coverage.plan=MBS"}, server.LastRequest(t).QueryPairs())
	})

	t.Run("Blank Patient Id", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, body)
		client := NewMedicareInformationFhirClient(server.RestClient(t), logger.NewNopLogger())

		_, err := client.GetMbsItems(context.Background(), "", nil, nil)
		var argErr *exceptions.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "patientId", argErr.Param)
		assert.Empty(t, server.Requests())
	})
}
