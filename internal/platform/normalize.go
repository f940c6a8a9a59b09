package platform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// systemTable maps uname-style OS names to hadolint asset OS names.
var systemTable = map[string]string{
	"Linux":   OSLinux,
	"Darwin":  OSDarwin,
	"Windows": OSWindows,
}

// machineTable maps machine names to hadolint asset architecture names.
// "amd64" and "arm64" are the runtime.GOARCH spellings; "arm64" is also what
// uname reports on Apple Silicon.
var machineTable = map[string]string{
	"x86_64":  ArchX86_64,
	"AMD64":   ArchX86_64,
	"amd64":   ArchX86_64,
	"aarch64": ArchARM64,
	"arm64":   ArchARM64,
}

// Map converts raw host identifiers into a release Target.
func Map(system, machine string) (Target, error) {
	osName, osOK := systemTable[system]
	archName, archOK := machineTable[machine]
	if !osOK || !archOK {
		return Target{}, &UnsupportedPlatformError{System: system, Machine: machine}
	}

	return Target{OS: osName, Arch: archName}, nil
}

// MapInfo converts detected host information into a release Target.
func MapInfo(info *Info) (Target, error) {
	if info == nil {
		return Target{}, &UnsupportedPlatformError{}
	}
	return Map(info.System, info.Machine)
}

// systemName converts a runtime.GOOS value to its uname-style spelling
// ("linux" -> "Linux").
func systemName(goos string) string {
	goos = strings.TrimSpace(goos)
	if goos == "" {
		return ""
	}
	return cases.Title(language.Und).String(goos)
}
