package app

import (
	"errors"
	"fmt"
)

// Output formats supported by the CLI.
const (
	OutputSummary = "summary"
	OutputJSON    = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModelPath string

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case OutputSummary, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.Output, OutputSummary, OutputJSON)
	}
	return &cfg, nil
}
