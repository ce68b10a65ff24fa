package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Bundle struct {
	ResourceBase
	Type  string        `json:"type"`
	Total *int          `json:"total,omitempty"`
	Link  []BundleLink  `json:"link,omitempty"`
	Entry []BundleEntry `json:"entry,omitempty"`
}

func (*Bundle) ResourceName() string { return constvars.ResourceBundle }

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntry struct {
	FullURL  string               `json:"fullUrl,omitempty"`
	Resource json.RawMessage      `json:"resource,omitempty"`
	Search   *BundleEntrySearch   `json:"search,omitempty"`
	Request  *BundleEntryRequest  `json:"request,omitempty"`
	Response *BundleEntryResponse `json:"response,omitempty"`
}

type BundleEntrySearch struct {
	Mode  string   `json:"mode,omitempty"`
	Score *float64 `json:"score,omitempty"`
}

type BundleEntryRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

type BundleEntryResponse struct {
	Status       string `json:"status"`
	Location     string `json:"location,omitempty"`
	Etag         string `json:"etag,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// NewBundle wraps resources as entries of a bundle of the given type.
func NewBundle(bundleType string, resources ...Resource) (*Bundle, error) {
	bundle := &Bundle{
		ResourceBase: ResourceBase{ResourceType: constvars.ResourceBundle},
		Type:         bundleType,
	}
	for _, resource := range resources {
		if err := bundle.AddEntry(resource); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

func (b *Bundle) AddEntry(resource Resource) error {
	raw, err := MarshalResource(resource)
	if err != nil {
		return err
	}
	b.Entry = append(b.Entry, BundleEntry{Resource: raw})
	return nil
}

// ParseResource decodes the entry's embedded resource.
func (e BundleEntry) ParseResource() (Resource, error) {
	if len(e.Resource) == 0 {
		return nil, ErrMissingResourceType
	}
	return ParseResource(e.Resource)
}

// Resources decodes every entry in order. Entries without a resource are
// skipped.
func (b *Bundle) Resources() ([]Resource, error) {
	resources := make([]Resource, 0, len(b.Entry))
	for _, entry := range b.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		resource, err := entry.ParseResource()
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, nil
}
