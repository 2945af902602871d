package app

import (
	"io"
	"log/slog"
)

// App encapsulates the demo's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the demo application. It returns a fully
// initialized App instance with its own isolated logger. Diagnostics go to
// errW so the transcript on outW stays machine-comparable.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
