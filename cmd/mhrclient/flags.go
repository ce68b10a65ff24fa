package main

import (
	"fmt"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func addDateRangeFlags(cmd *cobra.Command, what string) {
	cmd.Flags().String("from", "", fmt.Sprintf("Earliest %s date, YYYY-MM-DD", what))
	cmd.Flags().String("to", "", fmt.Sprintf("Latest %s date, YYYY-MM-DD", what))
}

func dateRangeFlags(cmd *cobra.Command) (from, to *time.Time, err error) {
	from, err = dateFlag(cmd, "from")
	if err != nil {
		return nil, nil, err
	}
	to, err = dateFlag(cmd, "to")
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func dateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := utils.ParseFhirDate(strings.TrimSpace(value))
	if err != nil {
		return nil, exceptions.ErrInvalidArgument(name, fmt.Sprintf(constvars.ErrArgInvalidDate, name))
	}
	return &parsed, nil
}

// codedValuesFlag reads repeated code^^system values.
func codedValuesFlag(cmd *cobra.Command, name string) ([]models.CodedValue, error) {
	rawValues, _ := cmd.Flags().GetStringSlice(name)
	values := utils.SanitizeValues(rawValues)

	codedValues := make([]models.CodedValue, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, constvars.FhirCodedValueSeparator, 2)
		if len(parts) != 2 || utils.IsBlank(parts[0]) || utils.IsBlank(parts[1]) {
			return nil, exceptions.ErrInvalidArgument(name, fmt.Sprintf(constvars.ErrArgInvalidCodedValue, name))
		}
		codedValues = append(codedValues, models.CodedValue{Code: parts[0], CodeSystem: parts[1]})
	}
	return codedValues, nil
}

func addPatientSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("ihi", "", "Individual Healthcare Identifier")
	cmd.Flags().String("identifier", "", "Medicare card, DVA file or military health number")
	cmd.Flags().String("identifier-type", string(models.IdentifierTypeMedicareCardNumber), "MedicareCardNumber, DvaFileNumber or MilitaryHealthNumber")
	cmd.Flags().String("birthdate", "", "Birth date, YYYY-MM-DD")
	cmd.Flags().String("gender", "", "male, female, other or unknown")
	cmd.Flags().String("family", "", "Family name")
	cmd.Flags().String("given", "", "Given name")
}

// patientSearchFlags returns nil when neither an IHI nor another identifier
// was given.
func patientSearchFlags(cmd *cobra.Command) (*models.PatientSearch, error) {
	ihi, _ := cmd.Flags().GetString("ihi")
	if !utils.IsBlank(ihi) {
		return models.NewIhiPatientSearch(strings.TrimSpace(ihi))
	}

	identifierValue, _ := cmd.Flags().GetString("identifier")
	if utils.IsBlank(identifierValue) {
		return nil, nil
	}

	identifierTypeName, _ := cmd.Flags().GetString("identifier-type")
	identifierType, err := models.ParseIdentifierType(identifierTypeName)
	if err != nil {
		return nil, err
	}

	birthdate, err := dateFlag(cmd, "birthdate")
	if err != nil {
		return nil, err
	}
	if birthdate == nil {
		return nil, exceptions.ErrInvalidArgument("birthdate", constvars.ErrArgNoIhi)
	}

	genderName, _ := cmd.Flags().GetString("gender")
	gender, err := models.ParseGender(genderName)
	if err != nil {
		return nil, err
	}

	familyName, _ := cmd.Flags().GetString("family")
	givenName, _ := cmd.Flags().GetString("given")

	return models.NewDemographicPatientSearch(
		models.NewIdentifier(strings.TrimSpace(identifierValue), identifierType),
		*birthdate,
		gender,
		familyName,
		givenName,
	)
}
