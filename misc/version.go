// Package misc keeps build related information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set at build time with -ldflags "-X mxdark/misc.version=... -X mxdark/misc.githash=...".
var (
	version = "dev"
	githash = "unknown"
)

const appName = "mxdark"

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit hash program was built from.
func GetGitHash() string {
	return githash
}

// GetAppName returns program name, executable name when it could be
// determined.
func GetAppName() string {
	exe, err := os.Executable()
	if err != nil {
		return appName
	}
	name := strings.TrimSuffix(filepath.Base(exe), ".exe")
	if len(name) == 0 || strings.HasSuffix(name, ".test") || name == "__debug_bin" {
		return appName
	}
	return name
}
