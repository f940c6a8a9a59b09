package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Load reads the hook configuration from the environment. It touches neither
// the network nor the filesystem; a missing PRE_COMMIT_REF is reported later
// by ResolveVersion.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault(keyBaseURL, DefaultBaseURL)
	v.SetDefault(keyLogLevel, DefaultLogLevel)

	bindings := map[string]string{
		keyRef:      EnvRef,
		keyCacheDir: EnvCacheDir,
		keyBaseURL:  EnvBaseURL,
		keyLogLevel: EnvLogLevel,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		Ref:      v.GetString(keyRef),
		BaseURL:  strings.TrimRight(v.GetString(keyBaseURL), "/"),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
	}

	cacheRoot := v.GetString(keyCacheDir)
	if cacheRoot == "" {
		root, err := DefaultCacheRoot()
		if err != nil {
			return nil, err
		}
		cacheRoot = root
	}
	cfg.CacheRoot = filepath.Clean(cacheRoot)

	if cfg.BaseURL == "" {
		return nil, &ConfigurationError{Var: EnvBaseURL, Reason: "is empty"}
	}

	return cfg, nil
}

// DefaultCacheRoot returns ~/.cache/hadolint-py.
func DefaultCacheRoot() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cache", cacheDirName), nil
}
