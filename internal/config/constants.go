package config

// Environment variables consulted by Load
const (
	EnvRef      = "PRE_COMMIT_REF"
	EnvCacheDir = "HADOLINT_PY_CACHE_DIR"
	EnvBaseURL  = "HADOLINT_PY_BASE_URL"
	EnvLogLevel = "HADOLINT_PY_LOG_LEVEL"
)

// viper keys
const (
	keyRef      = "ref"
	keyCacheDir = "cache_dir"
	keyBaseURL  = "base_url"
	keyLogLevel = "log_level"
)

const (
	// DefaultBaseURL is the hadolint GitHub release download root
	DefaultBaseURL = "https://github.com/hadolint/hadolint/releases/download"
	// DefaultLogLevel is used when HADOLINT_PY_LOG_LEVEL is unset
	DefaultLogLevel = "info"
	// cacheDirName is the directory created under ~/.cache
	cacheDirName = "hadolint-py"
	// versionPrefix must lead every PRE_COMMIT_REF value
	versionPrefix = "v"
)
