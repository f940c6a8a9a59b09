// Package platform provides host OS and architecture detection for the hook.
//
// It reports the host the way uname does ("Linux", "x86_64") and maps those
// raw identifiers onto the names used by hadolint release assets through
// fixed lookup tables. Hosts outside the tables fail closed with an
// *UnsupportedPlatformError.
package platform

import (
	"context"
	"errors"
	"fmt"
)

// OS names used in hadolint release asset names.
const (
	OSLinux   = "Linux"
	OSDarwin  = "Darwin"
	OSWindows = "Windows"
)

// Architecture names used in hadolint release asset names.
const (
	ArchX86_64 = "x86_64"
	ArchARM64  = "arm64"
)

// Info contains the raw, unmapped host identifiers.
type Info struct {
	System  string // uname-style OS name (e.g., "Linux", "Darwin", "Windows")
	Machine string // uname-style machine name (e.g., "x86_64", "aarch64", "AMD64")
	GOOS    string // runtime.GOOS
	GOARCH  string // runtime.GOARCH
}

// Target is a platform expressed in hadolint's release asset naming.
type Target struct {
	OS   string // "Linux", "Darwin", "Windows"
	Arch string // "x86_64", "arm64"
}

// String returns the asset suffix, e.g. "Linux-x86_64".
func (t Target) String() string {
	return t.OS + "-" + t.Arch
}

// IsWindows returns true if the target OS is Windows.
func (t Target) IsWindows() bool {
	return t.OS == OSWindows
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// UnsupportedPlatformError is returned when the host OS or architecture has
// no hadolint release asset. It carries the raw identifiers.
type UnsupportedPlatformError struct {
	System  string
	Machine string
}

// Error formats the unsupported pair as a human-readable message.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s %s", e.System, e.Machine)
}

// IsUnsupportedPlatform reports whether err is (or wraps) an *UnsupportedPlatformError.
func IsUnsupportedPlatform(err error) bool {
	var upe *UnsupportedPlatformError
	return errors.As(err, &upe)
}
