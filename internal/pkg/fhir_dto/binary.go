package fhir_dto

import (
	"encoding/base64"
	"mhr-fhir-client/internal/pkg/constvars"
)

type Binary struct {
	ResourceBase
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

func (*Binary) ResourceName() string { return constvars.ResourceBinary }

// Decode returns the document bytes carried base64 encoded in Content.
func (b *Binary) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(b.Content)
}
