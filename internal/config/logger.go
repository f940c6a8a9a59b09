package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger provides structured logging for hook operations.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg interface{}, keyvals ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg interface{}, keyvals ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg interface{}, keyvals ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg interface{}, keyvals ...interface{})
}

// noopLogger is a Logger implementation that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (noopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (noopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (noopLogger) Error(msg interface{}, keyvals ...interface{}) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return noopLogger{}
}

// NewLogger creates the hook's logger writing to w at the configured level.
func NewLogger(w io.Writer, cfg *Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, &ConfigurationError{
			Var:    EnvLogLevel,
			Value:  cfg.LogLevel,
			Reason: "is not a log level (debug, info, warn, error)",
		}
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: cacheDirName,
		Level:  level,
	}), nil
}
