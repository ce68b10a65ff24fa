package fhir_dto

import (
	"mhr-fhir-client/internal/pkg/constvars"
	"strings"

	"github.com/goccy/go-json"
)

type OperationOutcome struct {
	ResourceBase
	Text      *Narrative              `json:"text,omitempty"`
	Contained []json.RawMessage       `json:"contained,omitempty"`
	Extension []Extension             `json:"extension,omitempty"`
	Issue     []OperationOutcomeIssue `json:"issue"`
}

func (*OperationOutcome) ResourceName() string { return constvars.ResourceOperationOutcome }

type OperationOutcomeIssue struct {
	Severity    string           `json:"severity"`
	Code        string           `json:"code"`
	Details     *CodeableConcept `json:"details,omitempty"`
	Diagnostics string           `json:"diagnostics,omitempty"`
	Location    []string         `json:"location,omitempty"`
}

// Diagnostics joins the human readable text of every issue.
func (o *OperationOutcome) Diagnostics() string {
	var messages []string
	for _, issue := range o.Issue {
		switch {
		case issue.Diagnostics != "":
			messages = append(messages, issue.Diagnostics)
		case issue.Details != nil && issue.Details.Text != "":
			messages = append(messages, issue.Details.Text)
		}
	}
	return strings.Join(messages, "; ")
}
