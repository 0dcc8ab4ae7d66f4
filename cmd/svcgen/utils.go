package main

import (
	"fmt"
	"os"

	"github.com/dragonbear-os/router/pkg/logging"
	"github.com/dragonbear-os/router/pkg/values"
)

// newLogger builds the CLI logger honoring the --verbose flag.
func newLogger() *logging.Logger {
	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}

	return logging.New(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Output: os.Stderr,
	})
}

// loadValues loads the values file, applies --set overrides and validates
// the result, logging any warnings.
func loadValues(logger *logging.Logger, setFlags []string) (*values.Values, error) {
	vals, err := values.Load(valuesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load values: %w", err)
	}

	if len(setFlags) > 0 {
		overrides, err := values.ParseOverrides(setFlags)
		if err != nil {
			return nil, err
		}
		if err := vals.Apply(overrides); err != nil {
			return nil, fmt.Errorf("failed to apply overrides: %w", err)
		}
		logger.Debug("Applied overrides", "count", len(overrides))
	}

	v := values.NewValidator()
	if err := v.Validate(vals); err != nil {
		return nil, fmt.Errorf("values validation failed: %w", err)
	}
	for _, warning := range v.Warnings {
		logger.Warn(warning)
	}

	return vals, nil
}
