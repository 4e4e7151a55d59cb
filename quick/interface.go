// Package quick provides string-based shortcuts for configuring the
// process-wide execution logger, e.g.
//
//	quick.Initialize("directory=./logs", "executions_stored=5", "filter_level=info")
package quick

import (
	"fmt"

	execlogger "github.com/VBenevides/exec-logger"
)

// Trace logs a trace message through the process-wide logger.
func Trace(message string) {
	execlogger.Trace(message)
}

// Debug logs a debug message through the process-wide logger.
func Debug(message string) {
	execlogger.Debug(message)
}

// Info logs an info message through the process-wide logger.
func Info(message string) {
	execlogger.Info(message)
}

// Warn logs a warning message through the process-wide logger.
func Warn(message string) {
	execlogger.Warn(message)
}

// Error logs an error message through the process-wide logger.
func Error(message string) {
	execlogger.Error(message)
}

// Initialize configures and installs the process-wide logger from
// "key=value" statements. With no arguments it initializes with defaults.
func Initialize(args ...string) error {
	settings, err := config(args...)
	if err != nil {
		return err
	}

	cfg, err := settings.Config()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return execlogger.Initialize(cfg)
}

// InitializeFile configures and installs the process-wide logger from a
// TOML, YAML or JSON settings file.
func InitializeFile(path string) error {
	settings, err := execlogger.LoadSettings(path)
	if err != nil {
		return err
	}

	cfg, err := settings.Config()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return execlogger.Initialize(cfg)
}
