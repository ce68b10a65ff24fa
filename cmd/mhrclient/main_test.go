package main

import (
	"bytes"
	"context"
	"errors"
	"mhr-fhir-client/internal/app/config"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/app/services/mhr_fhir/fhirtest"
	"mhr-fhir-client/internal/app/services/shared/jwtmanager"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchSetBody = `{"resourceType":"Bundle","type":"searchset","entry":[{"resource":{"resourceType":"MedicationOrder","id":"mo-1"}}]}`

func testBootstrap(baseURL, persona string) *config.Bootstrap {
	return &config.Bootstrap{
		Logger:       logger.NewNopLogger(),
		DriverConfig: &config.DriverConfig{},
		InternalConfig: &config.InternalConfig{
			MHR: config.AppMHR{
				Persona:     persona,
				BaseUrl:     baseURL,
				BearerToken: "cli-token",
				ClientID:    "cli-app",
				AppVersion:  "3.1",
			},
			ConsumerOAuth: config.AppConsumerOAuth{
				ClientID:         "client-1",
				ClientSecret:     "secret-1",
				RedirectUrl:      "https://app.example.com/callback",
				ScopeUrl:         "https://scope.example.com/patient/*.read",
				LoginUrl:         "https://auth.example.com/login",
				TokenEndpointUrl: "https://auth.example.com/token",
			},
			ProviderOAuth: config.AppProviderOAuth{
				ClientID:     "provider-client",
				ClientSecret: "provider-secret",
				RedirectUrl:  "https://provider.example.com/callback",
				Hpio:         "8003621566684455",
			},
		},
	}
}

func execute(t *testing.T, bootstrap *config.Bootstrap, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := newRootCmd(bootstrap)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "cli-test")
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRecordsCommands(t *testing.T) {
	t.Run("Prescriptions Printed As Indented JSON", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, searchSetBody)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		out, err := execute(t, bootstrap, "records", "prescriptions", "--patient", "p-1", "--from", "2024-01-01")
		require.NoError(t, err)

		request := server.LastRequest(t)
		assert.Equal(t, "/fhir/MedicationOrder", request.Path)
		assert.Equal(t, []string{"patient=p-1", "datewritten=ge2024-01-01"}, request.QueryPairs())
		assert.Equal(t, "Bearer cli-token", request.Header.Get("Authorization"))
		assert.Equal(t, "cli-app", request.Header.Get("App-Id"))

		assert.Contains(t, out, `"resourceType": "Bundle"`)
		resource, err := fhir_dto.ParseResource([]byte(out))
		require.NoError(t, err)
		bundle, ok := resource.(*fhir_dto.Bundle)
		require.True(t, ok)
		assert.Len(t, bundle.Entry, 1)
	})

	t.Run("Search Passes Coded Values", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Bundle","type":"searchset"}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "records", "search", "--patient", "p-1",
			"--class", "60591-5^^http://loinc.org",
			"--status", "current",
		)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"patient=p-1",
			"class=60591-5^^http://loinc.org",
			"status=current",
		}, server.LastRequest(t).QueryPairs())
	})

	t.Run("Malformed Coded Value", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "records", "search", "--patient", "p-1", "--class", "60591-5")
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "class", argErr.Param)
		assert.Empty(t, server.Requests())
	})

	t.Run("Invalid Date", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "records", "pbs", "--patient", "p-1", "--to", "31/12/2024")
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "to", argErr.Param)
		assert.Empty(t, server.Requests())
	})

	t.Run("Document Written To File", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Binary","id":"doc-1","contentType":"application/zip","content":"UEsDBA=="}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)
		output := filepath.Join(t.TempDir(), "doc.zip")

		out, err := execute(t, bootstrap, "records", "documents", "--patient", "p-1", "--document", "doc-1", "--output", output)
		require.NoError(t, err)
		assert.Empty(t, out)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, []byte("PK\x03\x04"), content)
		assert.Equal(t, "/fhir/Binary/doc-1", server.LastRequest(t).Path)
	})

	t.Run("Provider Operation Refused For Consumer", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "records", "verify-patient", "--ihi", "8003608166690503")
		assert.True(t, errors.Is(err, exceptions.ErrOperationNotPermitted))
		assert.Empty(t, server.Requests())
	})

	t.Run("Patient With Meta Printed", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"resourceType":"Patient","id":"p-1","meta":{"versionId":"4"},"gender":"female"}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		out, err := execute(t, bootstrap, "records", "patient", "--patient", "p-1")
		require.NoError(t, err)
		assert.Equal(t, "/fhir/Patient/p-1", server.LastRequest(t).Path)
		assert.JSONEq(t, `{"resourceType":"Patient","id":"p-1","meta":{"versionId":"4"},"gender":"female"}`, out)
	})

	t.Run("Gateway Failure Surfaces Outcome", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusNotFound, `{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"not-found","diagnostics":"no such patient"}]}`)
		bootstrap := testBootstrap(server.URL+"/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "records", "patient", "--patient", "p-404")
		var mhrErr *exceptions.MhrFhirError
		require.True(t, errors.As(err, &mhrErr))
		assert.Equal(t, http.StatusNotFound, mhrErr.StatusCode)
	})

	t.Run("Unknown Persona", func(t *testing.T) {
		bootstrap := testBootstrap("https://mhr.example.com/fhir", "auditor")

		_, err := execute(t, bootstrap, "records", "allergies", "--patient", "p-1")
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "persona", argErr.Param)
	})

	t.Run("Unknown Flag", func(t *testing.T) {
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "records", "allergies", "--patient-id", "p-1")
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "flags", argErr.Param)
	})
}

func TestOAuthCommands(t *testing.T) {
	t.Run("Consumer Login URI", func(t *testing.T) {
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaConsumer)

		out, err := execute(t, bootstrap, "consumer", "login-uri")
		require.NoError(t, err)
		assert.Equal(t, "https://auth.example.com/login?client_id=client-1&response_type=code&redirect_uri=https%3A%2F%2Fapp.example.com%2Fcallback&scope=https%3A%2F%2Fscope.example.com%2Fpatient%2F%2A.read\n", out)
	})

	t.Run("Consumer Token Without Code", func(t *testing.T) {
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaConsumer)

		_, err := execute(t, bootstrap, "consumer", "token")
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "authorisationCode", argErr.Param)
	})

	t.Run("Consumer Token Exchange", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":3600}`)
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaConsumer)
		bootstrap.InternalConfig.ConsumerOAuth.TokenEndpointUrl = server.URL + "/token"

		out, err := execute(t, bootstrap, "consumer", "token", "--code", "auth-code-1")
		require.NoError(t, err)
		assert.Contains(t, out, `"access_token": "at-1"`)
		assert.Contains(t, out, `"refresh_token": "rt-1"`)
		assert.Contains(t, out, `"expires_in": "3600"`)

		request := server.LastRequest(t)
		assert.Equal(t, "/token", request.Path)
		form, err := url.ParseQuery(string(request.Body))
		require.NoError(t, err)
		assert.Equal(t, "authorization_code", form.Get("grant_type"))
		assert.Equal(t, "auth-code-1", form.Get("code"))
		assert.Equal(t, "secret-1", form.Get("client_secret"))
	})

	t.Run("Consumer Refresh", func(t *testing.T) {
		server := fhirtest.NewServer(t, http.StatusOK, `{"access_token":"at-2","refresh_token":"rt-2","expires_in":"1799"}`)
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaConsumer)
		bootstrap.InternalConfig.ConsumerOAuth.TokenEndpointUrl = server.URL + "/token"

		out, err := execute(t, bootstrap, "consumer", "refresh", "--refresh-token", "rt-1")
		require.NoError(t, err)
		assert.Contains(t, out, `"access_token": "at-2"`)
		assert.Contains(t, out, `"expires_in": "1799"`)

		form, err := url.ParseQuery(string(server.LastRequest(t).Body))
		require.NoError(t, err)
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "rt-1", form.Get("refresh_token"))
	})

	t.Run("Provider Verify Token", func(t *testing.T) {
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaProvider)
		providerOAuth := bootstrap.InternalConfig.ProviderOAuth

		created, err := jwtmanager.NewJWTManager(logger.NewNopLogger()).CreateToken(context.Background(), &jwtmanager.CreateTokenInput{
			ClientID:     providerOAuth.ClientID,
			ClientSecret: providerOAuth.ClientSecret,
			RedirectURL:  providerOAuth.RedirectUrl,
			Hpio:         providerOAuth.Hpio,
			UserID:       "clinician-1",
		})
		require.NoError(t, err)

		out, err := execute(t, bootstrap, "provider", "verify-token", "--token", created.Token)
		require.NoError(t, err)
		assert.Contains(t, out, `"valid": true`)
		assert.Contains(t, out, `"jti": "`+created.ID+`"`)
	})

	t.Run("Provider Verify Token With Wrong Secret", func(t *testing.T) {
		bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaProvider)
		providerOAuth := bootstrap.InternalConfig.ProviderOAuth

		created, err := jwtmanager.NewJWTManager(logger.NewNopLogger()).CreateToken(context.Background(), &jwtmanager.CreateTokenInput{
			ClientID:     providerOAuth.ClientID,
			ClientSecret: "another-secret",
			RedirectURL:  providerOAuth.RedirectUrl,
			Hpio:         providerOAuth.Hpio,
			UserID:       "clinician-1",
		})
		require.NoError(t, err)

		out, err := execute(t, bootstrap, "provider", "verify-token", "--token", created.Token)
		require.NoError(t, err)
		assert.Contains(t, out, `"valid": false`)
		assert.Contains(t, out, `"reason": "`)
	})
}

func TestVersionCommand(t *testing.T) {
	bootstrap := testBootstrap("https://mhr.example.com/fhir", constvars.PersonaConsumer)

	out, err := execute(t, bootstrap, "version")
	require.NoError(t, err)
	assert.Equal(t, "Version: develop\nTag: 0.0.1-rc\n", out)
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Gateway Error With Outcome",
			err:  exceptions.NewMhrFhirError(http.StatusForbidden, "Forbidden", `{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"forbidden","diagnostics":"access denied"}]}`),
			want: "My Health Record returned 403: access denied\n",
		},
		{
			name: "Gateway Error Without Outcome",
			err:  exceptions.NewMhrFhirError(http.StatusServiceUnavailable, "Service Unavailable", "<html>down</html>"),
			want: "My Health Record returned 503: Service Unavailable\n",
		},
		{
			name: "Argument Error",
			err:  exceptions.ErrEmptyOrNull("patientId"),
			want: "patientId must not be null or empty (parameter patientId)\n",
		},
		{
			name: "Anything Else",
			err:  errors.New("dial tcp: connection refused"),
			want: "operation failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			renderError(&out, tt.err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
