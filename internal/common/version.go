package common

import (
	"fmt"
)

// Build metadata stamped by -ldflags "-X .../internal/common.Version=..."
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the release reported by /api/status and the MCP server
func GetVersion() string {
	return Version
}

// GetFullVersion is the banner and crash report form: version plus build and commit
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, Build, GitCommit)
}

// VersionInfo returns the build metadata as status response fields
func VersionInfo() map[string]string {
	return map[string]string{
		"version": Version,
		"build":   Build,
		"commit":  GitCommit,
	}
}
