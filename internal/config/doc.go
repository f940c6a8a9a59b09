// Package config reads the hook's runtime configuration from the environment.
//
// # Overview
//
// Everything the hook needs from its environment is read exactly once, at
// startup, into an immutable Config value. The rest of the program receives
// that value as a parameter and never calls os.Getenv itself.
//
// Recognized variables:
//   - PRE_COMMIT_REF: required, the pinned hadolint release tag (e.g. "v2.12.0")
//   - HADOLINT_PY_CACHE_DIR: cache root (default: ~/.cache/hadolint-py)
//   - HADOLINT_PY_BASE_URL: release download base URL
//   - HADOLINT_PY_LOG_LEVEL: debug, info, warn or error (default: info)
//
// # Version Resolution
//
// ResolveVersion turns the pinned ref into a bare version string:
//
//	version, err := config.ResolveVersion(cfg.Ref)
//	if err != nil {
//	    // err is a *ConfigurationError
//	}
//
// # Logging
//
// Log output always goes to stderr so that stdout carries only the output of
// the delegated hadolint binary.
package config
