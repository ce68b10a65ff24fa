package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const outputIndent = "  "

func printJSON(w io.Writer, value interface{}) error {
	encoded, err := json.MarshalIndent(value, "", outputIndent)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

// printResource goes through the FHIR codec so resourceType is always set.
func printResource(w io.Writer, resource fhir_dto.Resource) error {
	encoded, err := fhir_dto.MarshalResource(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, encoded, "", outputIndent); err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	_, err = fmt.Fprintln(w, indented.String())
	return err
}

func renderError(w io.Writer, err error) {
	var mhrErr *exceptions.MhrFhirError
	var argErr *exceptions.ArgumentError

	switch {
	case errors.As(err, &mhrErr):
		diagnostics := ""
		if mhrErr.OperationOutcome != nil {
			diagnostics = mhrErr.OperationOutcome.Diagnostics()
		}
		if diagnostics == "" {
			diagnostics = mhrErr.StatusDescription
		}
		fmt.Fprintf(w, "My Health Record returned %d: %s\n", mhrErr.StatusCode, diagnostics)
	case errors.As(err, &argErr):
		fmt.Fprintln(w, argErr.Error())
	default:
		fmt.Fprintln(w, "operation failed")
	}
}

func flagError(_ *cobra.Command, err error) error {
	return exceptions.ErrInvalidArgument("flags", err.Error())
}
