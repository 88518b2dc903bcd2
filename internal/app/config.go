package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProcedurePath string // .hcl file or a directory of them
	DataDir       string // overrides the DATADIR environment variable

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProcedurePath == "" {
		return nil, errors.New("ProcedurePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
