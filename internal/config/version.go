package config

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ResolveVersion validates a pinned ref such as "v2.12.0" and returns the
// version without its "v" prefix.
func ResolveVersion(ref string) (string, error) {
	if ref == "" {
		return "", &ConfigurationError{Var: EnvRef, Reason: "not set"}
	}

	if !strings.HasPrefix(ref, versionPrefix) {
		return "", &ConfigurationError{
			Var:    EnvRef,
			Value:  ref,
			Reason: `does not start with "v"`,
		}
	}

	return strings.TrimPrefix(ref, versionPrefix), nil
}

// IsSemver reports whether ref is a valid semantic version tag.
// Release tags outside semver are still accepted by ResolveVersion.
func IsSemver(ref string) bool {
	return semver.IsValid(ref)
}
