package contracts

import (
	"context"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/dto/responses"
	"net/http"
)

// HTTPDoer is the transport strategy. *http.Client satisfies it.
type HTTPDoer interface {
	Do(request *http.Request) (*http.Response, error)
}

type RestClient interface {
	Execute(ctx context.Context, request *requests.RestRequest) (*responses.RestResponse, error)
}
