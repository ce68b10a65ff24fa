package responses

import (
	"mhr-fhir-client/internal/pkg/constvars"
	"net/http"
)

type RestResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (r *RestResponse) IsSuccess() bool {
	return r.StatusCode >= constvars.StatusOK && r.StatusCode < constvars.StatusMultipleChoices
}
