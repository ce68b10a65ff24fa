package mhr_rest

import (
	"context"
	"errors"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/dto/responses"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"mhr-fhir-client/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

type mhrFhirRestClient struct {
	BaseUrl     string
	BearerToken string
	ClientID    string
	AppVersion  string
	RestClient  contracts.RestClient
	Log         contracts.Logger
}

func NewMhrFhirRestClient(endpoint models.EndpointConfig, restClient contracts.RestClient, logger contracts.Logger) (contracts.MhrFhirRestClient, error) {
	if err := endpoint.Validate(); err != nil {
		return nil, err
	}
	return &mhrFhirRestClient{
		BaseUrl:     strings.TrimRight(endpoint.BaseURL, "/"),
		BearerToken: endpoint.BearerToken,
		ClientID:    endpoint.ClientID,
		AppVersion:  endpoint.AppVersion,
		RestClient:  restClient,
		Log:         logger,
	}, nil
}

// CreateRequest returns a fresh request on every call, so callers may add
// parameters without affecting each other.
func (c *mhrFhirRestClient) CreateRequest(resourcePath, method string) *requests.RestRequest {
	request := requests.NewRestRequest(method, c.BaseUrl+"/"+resourcePath)
	request.AddHeader(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	if c.BearerToken != "" {
		request.AddHeader(constvars.HeaderAuthorization, constvars.AuthorizationTypeBearer+" "+c.BearerToken)
	}
	if c.ClientID != "" {
		request.AddHeader(constvars.HeaderAppID, c.ClientID)
	}
	if c.AppVersion != "" {
		request.AddHeader(constvars.HeaderAppVersion, c.AppVersion)
	}
	return request
}

// ExecuteRequest decodes a successful body into out, whose concrete type
// names the resource expected back.
func (c *mhrFhirRestClient) ExecuteRequest(ctx context.Context, request *requests.RestRequest, out fhir_dto.Resource) error {
	response, err := c.execute(ctx, request)
	if err != nil {
		return err
	}

	if err := fhir_dto.UnmarshalResource(response.Body, out); err != nil {
		c.Log.Error("mhrFhirRestClient.ExecuteRequest error decoding response",
			constvars.LoggingRequestIDKey, utils.GetRequestID(ctx),
			constvars.LoggingResourceKey, out.ResourceName(),
			constvars.LoggingErrorKey, err,
		)
		return exceptions.ErrDecodeResponse(err, out.ResourceName())
	}
	return nil
}

func (c *mhrFhirRestClient) ExecuteRequestWithoutResult(ctx context.Context, request *requests.RestRequest) error {
	_, err := c.execute(ctx, request)
	return err
}

func (c *mhrFhirRestClient) execute(ctx context.Context, request *requests.RestRequest) (*responses.RestResponse, error) {
	response, err := c.RestClient.Execute(ctx, request)
	if err == nil {
		return response, nil
	}

	var restErr *exceptions.RestError
	if !errors.As(err, &restErr) {
		return nil, err
	}

	mhrErr := exceptions.NewMhrFhirError(restErr.StatusCode, http.StatusText(restErr.StatusCode), restErr.ResponseContent)
	c.Log.Error("mhrFhirRestClient.execute request rejected",
		constvars.LoggingRequestIDKey, utils.GetRequestID(ctx),
		constvars.LoggingMethodKey, request.Method,
		constvars.LoggingURIKey, request.URL,
		constvars.LoggingStatusCodeKey, restErr.StatusCode,
		constvars.LoggingErrorKey, mhrErr,
	)
	return nil, mhrErr
}

// SetResourceBody serializes resource as the FHIR JSON body of request.
func SetResourceBody(request *requests.RestRequest, resource fhir_dto.Resource) error {
	body, err := fhir_dto.MarshalResource(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	request.SetJSONBody(body, constvars.MIMEApplicationFHIRJSON)
	return nil
}

// AddDateRange appends param=ge{from} and param=le{to} for the bounds that
// are set.
func AddDateRange(request *requests.RestRequest, param string, from, to *time.Time) {
	if from != nil {
		request.AddQueryParameter(param, constvars.FhirPrefixGreaterOrEqualTo+utils.FormatFhirDate(from))
	}
	if to != nil {
		request.AddQueryParameter(param, constvars.FhirPrefixLessOrEqualTo+utils.FormatFhirDate(to))
	}
}
