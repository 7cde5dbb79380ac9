package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the application logger: human-readable output in development,
// JSON in production.
func New(env string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	switch env {
	case "production":
		log, err = zap.NewProduction()
	default:
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
