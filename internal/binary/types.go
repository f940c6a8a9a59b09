package binary

import (
	"errors"
	"fmt"
)

// BinaryName is the file name of the cached hadolint executable.
const BinaryName = "hadolint"

// CachedBinary describes the hadolint binary for one hook run.
type CachedBinary struct {
	Version    string // pinned version without "v" (e.g., "2.12.0")
	OS         string // "Linux", "Darwin", "Windows"
	Arch       string // "x86_64", "arm64"
	URL        string // release asset download URL
	Path       string // local cache path
	Executable bool   // owner-execute bit observed or set
}

// DownloadError reports a failure to populate the cache, either on the
// network or on the local filesystem.
type DownloadError struct {
	URL  string
	Path string
	Err  error
}

// Error formats the failure as a human-readable message.
func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download hadolint from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// IsDownloadError reports whether err is (or wraps) a *DownloadError.
func IsDownloadError(err error) bool {
	var de *DownloadError
	return errors.As(err, &de)
}
