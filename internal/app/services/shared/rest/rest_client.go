package rest

import (
	"bytes"
	"context"
	"io"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/dto/responses"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"
)

const redactedHeaderValue = "[REDACTED]"

var redactedFormKeys = []string{
	constvars.OAuthParamClientSecret,
	constvars.OAuthParamCode,
	constvars.OAuthParamRefreshToken,
	constvars.OAuthParamAssertion,
}

type restClient struct {
	HTTPClient contracts.HTTPDoer
	Log        contracts.Logger
}

// NewRestClient performs single exchanges over httpClient. Responses
// outside 2xx come back as *exceptions.RestError; network failures are
// returned untouched.
func NewRestClient(httpClient contracts.HTTPDoer, logger contracts.Logger) contracts.RestClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &restClient{
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *restClient) Execute(ctx context.Context, request *requests.RestRequest) (*responses.RestResponse, error) {
	requestID := utils.GetRequestID(ctx)

	var body io.Reader
	if len(request.Body) > 0 {
		body = bytes.NewReader(request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, request.FullURL(), body)
	if err != nil {
		c.Log.Error("restClient.Execute error creating HTTP request",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header = request.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	if c.Log.IsDebugEnabled() {
		c.Log.Debug("restClient.Execute request",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingMethodKey, req.Method,
			constvars.LoggingURIKey, req.URL.String(),
			constvars.LoggingHeadersKey, redactHeaders(req.Header),
			constvars.LoggingBodyKey, redactBody(req.Header, request.Body),
		)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("restClient.Execute error sending HTTP request",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingURIKey, req.URL.String(),
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient.Execute error reading response body",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, exceptions.ErrCannotReadResponse(err)
	}

	if c.Log.IsDebugEnabled() {
		c.Log.Debug("restClient.Execute response",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingStatusCodeKey, resp.StatusCode,
			constvars.LoggingURIKey, req.URL.String(),
			constvars.LoggingHeadersKey, resp.Header,
			constvars.LoggingBodyKey, string(responseBody),
		)
	}

	response := &responses.RestResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       responseBody,
	}

	if !response.IsSuccess() {
		c.Log.Warn("restClient.Execute non-success status",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingStatusCodeKey, resp.StatusCode,
			constvars.LoggingResponseLengthKey, len(responseBody),
		)
		return nil, exceptions.NewRestError(resp.StatusCode, string(responseBody))
	}

	return response, nil
}

func redactHeaders(header http.Header) http.Header {
	redacted := header.Clone()
	if redacted.Get(constvars.HeaderAuthorization) != "" {
		redacted.Set(constvars.HeaderAuthorization, redactedHeaderValue)
	}
	return redacted
}

// redactBody masks credentials carried in form encoded token requests.
func redactBody(header http.Header, body []byte) string {
	if !strings.HasPrefix(header.Get(constvars.HeaderContentType), constvars.MIMEApplicationForm) {
		return string(body)
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return redactedHeaderValue
	}
	for _, key := range redactedFormKeys {
		if form.Has(key) {
			form.Set(key, redactedHeaderValue)
		}
	}
	return form.Encode()
}
