package domain

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// AnyVersion is the unconstrained range recorded for newly declared
// dependencies.
const AnyVersion = "*"

// CaretRange returns the compat range derived from a resolved version:
// compatible within the leftmost non-zero component.
func CaretRange(version string) string {
	return "^" + version
}

// ValidVersion reports whether version is a well-formed semantic version
// (without the "v" prefix nbenv stores versions bare).
func ValidVersion(version string) bool {
	return semver.IsValid("v" + version)
}

// CompareVersions compares two bare semantic versions like semver.Compare.
func CompareVersions(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// RangeSatisfies reports whether version falls inside rangeStr. Supported
// forms: "*" (anything), "^x.y.z" (caret range), and a bare version (exact
// match). Malformed ranges match nothing.
func RangeSatisfies(rangeStr, version string) bool {
	v := "v" + version
	if !semver.IsValid(v) {
		return false
	}

	switch {
	case rangeStr == "" || rangeStr == AnyVersion:
		return true
	case strings.HasPrefix(rangeStr, "^"):
		base := "v" + strings.TrimPrefix(rangeStr, "^")
		if !semver.IsValid(base) {
			return false
		}
		if semver.Compare(v, base) < 0 {
			return false
		}
		return semver.Compare(v, caretUpperBound(base)) < 0
	default:
		return semver.Compare(v, "v"+rangeStr) == 0
	}
}

// caretUpperBound returns the exclusive upper bound of a caret range whose
// base is a canonical "v"-prefixed version.
func caretUpperBound(base string) string {
	parts := strings.SplitN(strings.TrimPrefix(semver.Canonical(base), "v"), ".", 3)
	major, _ := strconv.Atoi(parts[0])
	minor := 0
	patch := 0
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		// Strip any prerelease/build suffix before parsing.
		p := parts[2]
		if i := strings.IndexAny(p, "-+"); i >= 0 {
			p = p[:i]
		}
		patch, _ = strconv.Atoi(p)
	}

	switch {
	case major > 0:
		return "v" + strconv.Itoa(major+1) + ".0.0"
	case minor > 0:
		return "v0." + strconv.Itoa(minor+1) + ".0"
	default:
		return "v0.0." + strconv.Itoa(patch+1)
	}
}
