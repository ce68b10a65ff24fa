// Package fhirtest runs an in-process FHIR gateway that records what it
// receives, for tests of code built on the My Health Record rest client.
package fhirtest

import (
	"io"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/mhr_fhir/mhr_rest"
	"mhr-fhir-client/internal/app/services/shared/rest"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []RecordedRequest
}

// NewServer answers every request with status and body. It is closed when
// the test finishes.
func NewServer(t *testing.T, status int, body string) *Server {
	t.Helper()
	s := &Server{status: status, body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	status, responseBody := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json+fhir")
	w.WriteHeader(status)
	w.Write([]byte(responseBody))
}

// Requests returns everything received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest fails the test when nothing has been received.
func (s *Server) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	requests := s.Requests()
	if len(requests) == 0 {
		t.Fatal("no request reached the server")
	}
	return requests[len(requests)-1]
}

// RestClient returns a gateway client rooted at the server's /fhir path.
func (s *Server) RestClient(t *testing.T) contracts.MhrFhirRestClient {
	t.Helper()
	endpoint := models.EndpointConfig{
		BaseURL:     s.URL + "/fhir",
		BearerToken: "test-token",
		ClientID:    "test-app",
		AppVersion:  "1.0",
	}
	client, err := mhr_rest.NewMhrFhirRestClient(endpoint, rest.NewRestClient(s.Client(), logger.NewNopLogger()), logger.NewNopLogger())
	if err != nil {
		t.Fatalf("creating rest client: %v", err)
	}
	return client
}

// QueryPairs decodes the raw query into key=value strings, keeping order.
func (r RecordedRequest) QueryPairs() []string {
	if r.RawQuery == "" {
		return nil
	}
	var pairs []string
	for _, part := range strings.Split(r.RawQuery, "&") {
		key, value, _ := strings.Cut(part, "=")
		key, _ = url.QueryUnescape(key)
		value, _ = url.QueryUnescape(value)
		pairs = append(pairs, key+"="+value)
	}
	return pairs
}
