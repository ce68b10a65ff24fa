package main

import (
	"context"
	"mhr-fhir-client/internal/app/config"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/pkg/fhir_dto"
	"os"

	"github.com/spf13/cobra"
)

// recordsRunner returns nil when it has already written its own output.
type recordsRunner func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error)

func recordsCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Read and write My Health Record content as the configured persona",
	}

	cmd.AddCommand(
		prescriptionsCmd(bootstrap),
		dispensesCmd(bootstrap),
		allergiesCmd(bootstrap),
		documentsCmd(bootstrap),
		searchCmd(bootstrap),
		patientCmd(bootstrap),
		recordListCmd(bootstrap),
		pbsCmd(bootstrap),
		mbsCmd(bootstrap),
		phsMedicationsCmd(bootstrap),
		phsAllergiesCmd(bootstrap),
		verifyPatientCmd(bootstrap),
		accessCmd(bootstrap),
	)
	return cmd
}

func recordsSubCmd(bootstrap *config.Bootstrap, use, short string, run recordsRunner) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recordsClient, err := newRecordsClient(bootstrap)
			if err != nil {
				return err
			}
			resource, err := run(cmd.Context(), cmd, recordsClient)
			if err != nil {
				return err
			}
			if resource == nil {
				return nil
			}
			return printResource(cmd.OutOrStdout(), resource)
		},
	}
}

func patientFlag(cmd *cobra.Command) string {
	patientID, _ := cmd.Flags().GetString("patient")
	return patientID
}

func addPatientFlag(cmd *cobra.Command) {
	cmd.Flags().String("patient", "", "My Health Record patient id")
}

func prescriptionsCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "prescriptions", "Prescription records",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			from, to, err := dateRangeFlags(cmd)
			if err != nil {
				return nil, err
			}
			return recordsClient.GetPrescriptions(ctx, patientFlag(cmd), from, to)
		})
	addPatientFlag(cmd)
	addDateRangeFlags(cmd, "date written")
	return cmd
}

func dispensesCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "dispenses", "Dispense records",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			from, to, err := dateRangeFlags(cmd)
			if err != nil {
				return nil, err
			}
			includePrescription, _ := cmd.Flags().GetBool("include-prescription")
			return recordsClient.GetDispenses(ctx, patientFlag(cmd), from, to, includePrescription)
		})
	addPatientFlag(cmd)
	addDateRangeFlags(cmd, "handed over")
	cmd.Flags().Bool("include-prescription", false, "Include the authorizing prescription of each dispense")
	return cmd
}

func allergiesCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "allergies", "Shared health summary allergies",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			return recordsClient.GetSharedHealthSummaryAllergies(ctx, patientFlag(cmd))
		})
	addPatientFlag(cmd)
	return cmd
}

func documentsCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "documents", "Fetch a document as a Binary resource",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			documentID, _ := cmd.Flags().GetString("document")
			binary, err := recordsClient.GetDocument(ctx, patientFlag(cmd), documentID)
			if err != nil {
				return nil, err
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				return binary, nil
			}
			content, err := binary.Decode()
			if err != nil {
				return nil, err
			}
			return nil, os.WriteFile(output, content, 0600)
		})
	addPatientFlag(cmd)
	cmd.Flags().String("document", "", "Document id")
	cmd.Flags().String("output", "", "Write the decoded content to this file instead of printing the resource")
	return cmd
}

func searchCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "search", "Search document references",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			query := &models.SearchQuery{}

			var err error
			if query.ClassCodes, err = codedValuesFlag(cmd, "class"); err != nil {
				return nil, err
			}
			if query.TypeCodes, err = codedValuesFlag(cmd, "type"); err != nil {
				return nil, err
			}
			if query.StartDate, query.EndDate, err = dateRangeFlags(cmd); err != nil {
				return nil, err
			}

			statusName, _ := cmd.Flags().GetString("status")
			if statusName != "" {
				status, err := models.ParseDocumentStatus(statusName)
				if err != nil {
					return nil, err
				}
				query.Status = &status
			}

			query.Identifier, _ = cmd.Flags().GetString("identifier")
			query.Author, _ = cmd.Flags().GetString("author")
			query.SlotName, _ = cmd.Flags().GetString("slot-name")
			query.SlotValue, _ = cmd.Flags().GetString("slot-value")

			return recordsClient.SearchDocuments(ctx, patientFlag(cmd), query)
		})
	addPatientFlag(cmd)
	addDateRangeFlags(cmd, "created")
	cmd.Flags().StringSlice("class", nil, "Class code as code^^system, repeatable")
	cmd.Flags().StringSlice("type", nil, "Type code as code^^system, repeatable")
	cmd.Flags().String("identifier", "", "Document identifier, used on its own")
	cmd.Flags().String("author", "", "Author reference")
	cmd.Flags().String("status", "", "current, superseded or entered-in-error")
	cmd.Flags().String("slot-name", "", "Slot name")
	cmd.Flags().String("slot-value", "", "Slot value")
	return cmd
}

func patientCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "patient", "Patient details, or the consumer's own details bundle when no id is given",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			patientID := patientFlag(cmd)
			if patientID != "" {
				return recordsClient.GetPatientDetails(ctx, patientID)
			}
			consumer, err := asConsumer(recordsClient, "GetPatientDetailsBundle")
			if err != nil {
				return nil, err
			}
			return consumer.GetPatientDetailsBundle(ctx)
		})
	addPatientFlag(cmd)
	return cmd
}

func recordListCmd(bootstrap *config.Bootstrap) *cobra.Command {
	return recordsSubCmd(bootstrap, "record-list", "Records the consumer may access",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			consumer, err := asConsumer(recordsClient, "GetRecordList")
			if err != nil {
				return nil, err
			}
			return consumer.GetRecordList(ctx)
		})
}

func pbsCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "pbs", "Pharmaceutical Benefits Scheme claims",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			from, to, err := dateRangeFlags(cmd)
			if err != nil {
				return nil, err
			}
			return recordsClient.GetPbsItems(ctx, patientFlag(cmd), from, to)
		})
	addPatientFlag(cmd)
	addDateRangeFlags(cmd, "created")
	return cmd
}

func mbsCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "mbs", "Medicare Benefits Schedule claims",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			from, to, err := dateRangeFlags(cmd)
			if err != nil {
				return nil, err
			}
			return recordsClient.GetMbsItems(ctx, patientFlag(cmd), from, to)
		})
	addPatientFlag(cmd)
	addDateRangeFlags(cmd, "created")
	return cmd
}

func phsMedicationsCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "phs-medications", "Personal health summary medications",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			return recordsClient.GetPersonalHealthSummaryMedications(ctx, patientFlag(cmd))
		})
	addPatientFlag(cmd)
	return cmd
}

func phsAllergiesCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "phs-allergies", "Personal health summary allergies",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			return recordsClient.GetPersonalHealthSummaryAllergies(ctx, patientFlag(cmd))
		})
	addPatientFlag(cmd)
	return cmd
}

func verifyPatientCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "verify-patient", "Check that a patient has a record",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			provider, err := asProvider(recordsClient, "VerifyPatientExists")
			if err != nil {
				return nil, err
			}
			search, err := patientSearchFlags(cmd)
			if err != nil {
				return nil, err
			}
			return provider.VerifyPatientExists(ctx, search)
		})
	addPatientSearchFlags(cmd)
	return cmd
}

func accessCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := recordsSubCmd(bootstrap, "access", "Gain access to a patient record",
		func(ctx context.Context, cmd *cobra.Command, recordsClient contracts.MhrFhirBaseClient) (fhir_dto.Resource, error) {
			provider, err := asProvider(recordsClient, "GainAccessToPatientRecord")
			if err != nil {
				return nil, err
			}
			search, err := patientSearchFlags(cmd)
			if err != nil {
				return nil, err
			}

			accessTypeName, _ := cmd.Flags().GetString("access-type")
			accessType, err := models.ParseAccessType(accessTypeName)
			if err != nil {
				return nil, err
			}

			var accessCode *string
			if cmd.Flags().Changed("access-code") {
				code, _ := cmd.Flags().GetString("access-code")
				accessCode = &code
			}

			return provider.GainAccessToPatientRecord(ctx, patientFlag(cmd), search, accessType, accessCode)
		})
	addPatientFlag(cmd)
	addPatientSearchFlags(cmd)
	cmd.Flags().String("access-type", string(models.AccessTypeGeneralAccess), "GeneralAccess, AccessCode or EmergencyAccess")
	cmd.Flags().String("access-code", "", "Access code, required for AccessCode access")
	return cmd
}
