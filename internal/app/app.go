package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Results are written to
// outW; logs and per-line warnings go to errW, keeping the two streams
// separate so piped output stays clean.
func NewApp(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
