// Package version holds build information set with -ldflags.
package version

import "fmt"

// Overridden at build time, for example:
//
//	go build -ldflags "-X github.com/tsawler/ocrsift/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version with its commit and build date.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
