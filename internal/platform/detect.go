package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct {
	kernelArch func() (string, error)
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{kernelArch: host.KernelArch}
}

// Detect reports the host OS and machine architecture.
//
// The machine name comes from gopsutil (uname on Unix, the native system info
// on Windows) so that a 32-bit or emulated build still reports the kernel's
// architecture. If gopsutil fails, Detect falls back to runtime.GOARCH.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("platform detection cancelled: %w", err)
	}

	info := &Info{
		System: systemName(runtime.GOOS),
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
	}

	machine, err := d.kernelArch()
	machine = strings.TrimSpace(machine)
	if err != nil || machine == "" {
		// Graceful fallback: GOARCH spellings are in the machine table too
		machine = runtime.GOARCH
	}
	info.Machine = machine

	return info, nil
}
