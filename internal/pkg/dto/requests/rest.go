package requests

import (
	"mhr-fhir-client/internal/pkg/constvars"
	"net/http"
	"net/url"
	"strings"
)

type QueryParameter struct {
	Key   string
	Value string
}

// RestRequest describes one outgoing exchange. Query parameters keep their
// insertion order and may repeat.
type RestRequest struct {
	Method string
	URL    string
	Header http.Header
	Query  []QueryParameter
	Body   []byte
}

func NewRestRequest(method, rawURL string) *RestRequest {
	return &RestRequest{
		Method: method,
		URL:    rawURL,
		Header: make(http.Header),
	}
}

func (r *RestRequest) AddHeader(key, value string) *RestRequest {
	r.Header.Add(key, value)
	return r
}

func (r *RestRequest) AddQueryParameter(key, value string) *RestRequest {
	r.Query = append(r.Query, QueryParameter{Key: key, Value: value})
	return r
}

// SetJSONBody sends content with exactly the given Content-Type.
func (r *RestRequest) SetJSONBody(content []byte, contentType string) *RestRequest {
	r.Body = content
	r.Header.Set(constvars.HeaderContentType, contentType)
	return r
}

func (r *RestRequest) SetFormBody(form url.Values) *RestRequest {
	r.Body = []byte(form.Encode())
	r.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	return r
}

// RawQuery encodes the query parameters in insertion order.
func (r *RestRequest) RawQuery() string {
	pairs := make([]string, 0, len(r.Query))
	for _, parameter := range r.Query {
		pairs = append(pairs, url.QueryEscape(parameter.Key)+"="+url.QueryEscape(parameter.Value))
	}
	return strings.Join(pairs, "&")
}

// FullURL returns URL with the encoded query appended.
func (r *RestRequest) FullURL() string {
	rawQuery := r.RawQuery()
	if rawQuery == "" {
		return r.URL
	}
	separator := "?"
	if strings.Contains(r.URL, "?") {
		separator = "&"
	}
	return r.URL + separator + rawQuery
}

// QueryValues returns every value recorded for key, in order.
func (r *RestRequest) QueryValues(key string) []string {
	var values []string
	for _, parameter := range r.Query {
		if parameter.Key == key {
			values = append(values, parameter.Value)
		}
	}
	return values
}
