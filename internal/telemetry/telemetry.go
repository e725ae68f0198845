// Package telemetry configures structured logging for the vrptabu
// binary. The solver core (package vrp) never logs; only this package
// and its callers do, keeping the core side-effect free and easy to
// test in isolation.
package telemetry

import (
	"fmt"

	"go.uber.org/zap"
)

// Format selects the logger's output encoding.
type Format string

const (
	// FormatConsole is a human-readable development (console) encoder.
	FormatConsole Format = "console"

	// FormatJSON is a structured encoder suited to log aggregation.
	FormatJSON Format = "json"
)

// New builds a *zap.SugaredLogger for the given format. Console is the
// default for anything other than "json".
func New(format Format) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch format {
	case FormatJSON:
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("telemetry: build logger: %w", err)
	}

	return logger.Sugar(), nil
}

// IterationFields returns the structured fields attached to a
// per-iteration debug log line, mirroring the phase/iteration spans the
// original binary opened with tracing::span! at setup and
// main_search_loop boundaries.
func IterationFields(phase string, iteration int, fitness float64) []interface{} {
	return []interface{}{"phase", phase, "iteration", iteration, "fitness", fitness}
}
