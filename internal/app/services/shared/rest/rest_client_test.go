package rest

import (
	"context"
	"errors"
	"io"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRestClientExecute(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Success Returns Response Unaltered", func(t *testing.T) {
		var gotMethod, gotQuery, gotContentType, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotQuery = r.URL.RawQuery
			gotContentType = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Header().Set("X-Trace", "t1")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"resourceType":"Bundle","type":"transaction-response"}`))
		}))
		defer server.Close()

		request := requests.NewRestRequest("POST", server.URL+"/MedicationStatement")
		request.AddQueryParameter("source._type", "Patient").AddQueryParameter("docId", "d1")
		request.SetJSONBody([]byte(`{"resourceType":"Bundle"}`), "application/json+fhir")

		client := NewRestClient(server.Client(), logger.NewNopLogger())
		response, err := client.Execute(ctx, request)
		require.NoError(t, err)

		assert.Equal(t, "POST", gotMethod)
		assert.Equal(t, "source._type=Patient&docId=d1", gotQuery)
		assert.Equal(t, "application/json+fhir", gotContentType)
		assert.Equal(t, `{"resourceType":"Bundle"}`, gotBody)
		assert.Equal(t, http.StatusCreated, response.StatusCode)
		assert.Equal(t, "t1", response.Header.Get("X-Trace"))
		assert.JSONEq(t, `{"resourceType":"Bundle","type":"transaction-response"}`, string(response.Body))
	})

	t.Run("Non Success Becomes Rest Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("<html>maintenance</html>"))
		}))
		defer server.Close()

		client := NewRestClient(server.Client(), logger.NewNopLogger())
		response, err := client.Execute(ctx, requests.NewRestRequest("GET", server.URL+"/Patient"))
		assert.Nil(t, response)

		var restErr *exceptions.RestError
		require.True(t, errors.As(err, &restErr))
		assert.Equal(t, http.StatusServiceUnavailable, restErr.StatusCode)
		assert.Equal(t, "<html>maintenance</html>", restErr.ResponseContent)
	})

	t.Run("Network Error Propagates Unmodified", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := NewRestClient(http.DefaultClient, logger.NewNopLogger())
		_, err := client.Execute(ctx, requests.NewRestRequest("GET", serverURL+"/Patient"))
		require.Error(t, err)

		var urlErr *url.Error
		assert.True(t, errors.As(err, &urlErr))
		var restErr *exceptions.RestError
		assert.False(t, errors.As(err, &restErr))
	})

	t.Run("Debug Logging Redacts Authorization", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resourceType":"Patient","id":"p1"}`))
		}))
		defer server.Close()

		core, recorded := observer.New(zapcore.DebugLevel)
		client := NewRestClient(server.Client(), logger.NewZapAdapter(zap.New(core)))

		request := requests.NewRestRequest("GET", server.URL+"/Patient/p1")
		request.AddHeader("Authorization", "Bearer secret-token")
		_, err := client.Execute(ctx, request)
		require.NoError(t, err)

		debugEntries := recorded.FilterLevelExact(zapcore.DebugLevel).All()
		require.Len(t, debugEntries, 2)
		assert.Equal(t, "restClient.Execute request", debugEntries[0].Message)
		assert.Equal(t, "restClient.Execute response", debugEntries[1].Message)
		assert.Equal(t, "req-1", debugEntries[0].ContextMap()["request_id"])

		headers, ok := debugEntries[0].ContextMap()["headers"].(http.Header)
		require.True(t, ok)
		assert.Equal(t, "[REDACTED]", headers.Get("Authorization"))
		assert.Equal(t, "Bearer secret-token", request.Header.Get("Authorization"))
	})

	t.Run("Debug Logging Redacts Token Form Secrets", func(t *testing.T) {
		var gotSecret string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotSecret = r.PostForm.Get("client_secret")
			w.Write([]byte(`{"access_token":"a"}`))
		}))
		defer server.Close()

		core, recorded := observer.New(zapcore.DebugLevel)
		client := NewRestClient(server.Client(), logger.NewZapAdapter(zap.New(core)))

		request := requests.NewRestRequest("POST", server.URL+"/token")
		request.SetFormBody(url.Values{
			"grant_type":    {"refresh_token"},
			"client_id":     {"client-1"},
			"client_secret": {"secret-1"},
			"refresh_token": {"rt-1"},
			"assertion":     {"signed.jwt.value"},
		})
		_, err := client.Execute(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "secret-1", gotSecret)

		debugEntries := recorded.FilterLevelExact(zapcore.DebugLevel).All()
		require.Len(t, debugEntries, 2)
		body, ok := debugEntries[0].ContextMap()["body"].(string)
		require.True(t, ok)
		assert.NotContains(t, body, "secret-1")
		assert.NotContains(t, body, "rt-1")
		assert.NotContains(t, body, "signed.jwt.value")

		logged, err := url.ParseQuery(body)
		require.NoError(t, err)
		assert.Equal(t, "[REDACTED]", logged.Get("client_secret"))
		assert.Equal(t, "[REDACTED]", logged.Get("refresh_token"))
		assert.Equal(t, "[REDACTED]", logged.Get("assertion"))
		assert.Equal(t, "client-1", logged.Get("client_id"))
		assert.Equal(t, "refresh_token", logged.Get("grant_type"))
	})

	t.Run("No Debug Entries Below Debug Level", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		core, recorded := observer.New(zapcore.InfoLevel)
		client := NewRestClient(server.Client(), logger.NewZapAdapter(zap.New(core)))
		_, err := client.Execute(ctx, requests.NewRestRequest("GET", server.URL))
		require.NoError(t, err)
		assert.Zero(t, recorded.FilterLevelExact(zapcore.DebugLevel).Len())
	})
}
