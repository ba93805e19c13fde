package version

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// Version indicates what release of vertexcover the binary belongs to.
// Set at build time with -ldflags "-X ...".
var Version string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// Semver parses Version, tolerating a leading "v". A missing or
// malformed version reads as 0.0.0-dev.
func Semver() semver.Version {
	v, err := semver.ParseTolerant(Version)
	if err != nil {
		return semver.Version{Pre: []semver.PRVersion{{VersionStr: "dev"}}}
	}
	return v
}

// String returns a pretty string concatenation of Version and GitCommit
func String() string {
	commit := GitCommit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("vertexcover version: %s\ngit commit: %s\n", Semver(), commit)
}
