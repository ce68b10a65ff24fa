package logger

import (
	"mhr-fhir-client/internal/app/config"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

// NewLogger builds the driver named by LOGGER_DRIVER. The returned sync
// function flushes buffered entries and is nil for unbuffered drivers.
func NewLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (contracts.Logger, func() error) {
	switch driverConfig.Logger.Driver {
	case constvars.LoggerDriverLogrus:
		return NewLogrusAdapter(NewLogrusLogger(driverConfig, internalConfig)), nil
	default:
		adapter := NewZapAdapter(NewZapLogger(driverConfig, internalConfig))
		return adapter, adapter.Sync
	}
}

func NewNopLogger() contracts.Logger {
	return NewZapAdapter(zap.NewNop())
}
