// Package buildinfo carries the version stamped into the wireframe binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/katalvlaran/wireframe/internal/buildinfo.Version=v1.0.0 \
//	    -X github.com/katalvlaran/wireframe/internal/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/katalvlaran/wireframe/internal/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A plain `go install` leaves Version at "dev"; the module version recorded by
// the toolchain is used instead when there is one.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the program name shown in version output and log prefixes.
const Name = "wireframe"

// Stamped at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// shortCommit is how many hex digits of the commit are shown.
const shortCommit = 12

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// ResolvedVersion returns Version, or the main module version from the
// embedded build info when Version was not stamped.
func ResolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}

// String returns a one-line description, e.g.
// "wireframe v1.0.0 (commit 0123456789ab, built 2026-01-02, go1.24.1 linux/amd64)".
func String() string {
	commit := Commit
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s/%s)",
		Name, ResolvedVersion(), commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Template is the cobra version template; it prints String.
func Template() string {
	return String() + "\n"
}
