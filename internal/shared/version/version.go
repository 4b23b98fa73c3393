// Package version reports the build version of the stockline binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time:
//
//	go build -ldflags "-X github.com/cartonworks/stockline/internal/shared/version.Current=v1.4.0"
var Current = "dev"

// Normalize ensures a version string has the "v" prefix semver expects.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical form of Current, or Current unchanged when it
// is not a release version (e.g. "dev").
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return Current
	}
	return semver.Canonical(v)
}

// IsRelease reports whether the binary was built with a semver release tag.
func IsRelease() bool {
	v := Normalize(Current)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}
