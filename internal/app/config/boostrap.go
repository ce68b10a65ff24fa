package config

import (
	"context"
	"log"
	"mhr-fhir-client/internal/app/contracts"
)

type Bootstrap struct {
	Logger         contracts.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// LoggerSync flushes buffered log entries, if the driver buffers.
	LoggerSync func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.LoggerSync != nil {
		err := b.LoggerSync()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Logger")
	}

	return nil
}
