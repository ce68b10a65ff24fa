package main

import (
	"context"
	"log"
	"mhr-fhir-client/internal/app/config"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/pkg/constvars"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	appLogger, loggerSync := logger.NewLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Logger:         appLogger,
		LoggerSync:     loggerSync,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, constvars.REQUEST_ID_PREFIX+uuid.NewString())
	err := newRootCmd(bootstrap).ExecuteContext(ctx)
	if err != nil {
		appLogger.Error("mhrclient command failed",
			constvars.LoggingRequestIDKey, ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY),
			constvars.LoggingErrorKey, err,
		)
		renderError(os.Stderr, err)
	}

	if shutdownErr := bootstrap.Shutdown(context.Background()); shutdownErr != nil {
		log.Printf("Error shutting down: %v", shutdownErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(bootstrap *config.Bootstrap) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mhrclient",
		Short:         "Command line client for the My Health Record FHIR gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(consumerCmd(bootstrap))
	rootCmd.AddCommand(providerCmd(bootstrap))
	rootCmd.AddCommand(recordsCmd(bootstrap))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}
