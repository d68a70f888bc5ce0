package app

import (
	"errors"

	"github.com/zclconf/go-cty/cty"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Invoke holds raw read2env arguments for a single direct invocation.
	// Nil means no direct invocation.
	Invoke     map[string]cty.Value
	ScriptPath string // .hcl file or directory
	EnvFile    string // dotenv file imported before anything runs
	ExportPath string // dotenv destination; "-" means the output writer

	MaxFileSize int64
	LogFormat   string
	LogLevel    string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Invoke == nil && cfg.ScriptPath == "" {
		return nil, errors.New("nothing to run: provide a script or read2env arguments")
	}
	if cfg.MaxFileSize < 0 {
		return nil, errors.New("MaxFileSize cannot be negative")
	}
	return &cfg, nil
}
