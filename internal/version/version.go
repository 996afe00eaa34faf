// Package version reports build information for the remembrar binary.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver)
func String() string {
	return fmt.Sprintf("remembrar dev (commit: %s, built: %s, %s)", ShortCommit(), BuildTime, runtime.Version())
}

// ShortCommit returns the first seven characters of Commit.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
