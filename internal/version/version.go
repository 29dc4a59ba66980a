// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides the version information for the randgen utility.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE parses a semantic version string into its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var (
	// Version is the application version per the semantic versioning 2.0.0
	// spec.  It may be overridden at build time with:
	// '-ldflags "-X github.com/decred/dcrrand/internal/version.Version=fullsemver"'
	//
	// The package panics at init when it is not a full semantic version.
	Version = "0.1.0-pre"

	// The individual components of Version, set at init.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// semVer holds the parsed components of a semantic version.
type semVer struct {
	major, minor, patch uint
	pre, build          string
}

// parseSemVer parses the components of the provided version string.
func parseSemVer(s string) (semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return semVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var v semVer
	nums := []*uint{&v.major, &v.minor, &v.patch}
	names := []string{"major", "minor", "patch"}
	for i, dst := range nums {
		n, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return semVer{}, fmt.Errorf("malformed semver %s: %w", names[i],
				err)
		}
		*dst = uint(n)
	}
	v.pre, v.build = m[4], m[5]
	return v, nil
}

func init() {
	v, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	Major, Minor, Patch = v.major, v.minor, v.patch
	PreRelease, BuildMetadata = v.pre, v.build
}

// String returns the application version.  When the version carries no build
// metadata and the binary was built from a version control checkout, the
// abbreviated commit is appended as build metadata.
func String() string {
	if BuildMetadata != "" {
		return Version
	}
	if commit := NormalizeString(vcsCommitID()); commit != "" {
		return Version + "+" + commit
	}
	return Version
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid in pre-release and build metadata strings.
func NormalizeString(str string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
