package binary

import (
	"fmt"
	"strings"

	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/config"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/platform"
)

// DefaultBaseURL is the hadolint GitHub release download root.
const DefaultBaseURL = config.DefaultBaseURL

// BuildURL constructs the release asset URL.
// Pattern: {baseURL}/v{version}/hadolint-{OS}-{arch}
func BuildURL(baseURL, version string, target platform.Target) string {
	baseURL = strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/v%s/%s", baseURL, version, AssetName(target))
}

// AssetName returns the release asset file name for target,
// e.g. "hadolint-Linux-x86_64".
func AssetName(target platform.Target) string {
	return fmt.Sprintf("%s-%s-%s", BinaryName, target.OS, target.Arch)
}
