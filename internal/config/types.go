package config

import (
	"errors"
	"fmt"
)

// Config is the hook configuration, read once from the environment.
type Config struct {
	// Ref is the raw PRE_COMMIT_REF value (may be empty; validated by ResolveVersion)
	Ref string
	// CacheRoot is the directory that holds one subdirectory per cached version
	CacheRoot string
	// BaseURL is the release download root, without a trailing slash
	BaseURL string
	// LogLevel is one of debug, info, warn, error
	LogLevel string
}

// ConfigurationError reports a missing or malformed configuration value.
type ConfigurationError struct {
	Var    string // environment variable name
	Value  string // offending value (empty when unset)
	Reason string
}

// Error formats the error as a human-readable message.
func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s environment variable %s", e.Var, e.Reason)
	}
	return fmt.Sprintf("%s environment variable invalid: %q %s", e.Var, e.Value, e.Reason)
}

// IsConfigurationError reports whether err is (or wraps) a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
