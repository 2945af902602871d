package app

import (
	"errors"

	"github.com/vk/crashlab/internal/fault"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProgName string   // argv[0], echoed as argument 0
	Args     []string // positional arguments after flag parsing

	LogFormat string
	LogLevel  string
	Fault     fault.Mode
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProgName == "" {
		return nil, errors.New("ProgName is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
