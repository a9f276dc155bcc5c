package build

import (
	"regexp"
	"strconv"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// The documentation's version-info document carries the Unity version
// and the build revision in its footer, e.g.
//
//	Version: <b>2019.3</b>
//	Built from 2019.3.0f6 (a1b2c3d4e5f6)
//
// The two patterns are independent: either can fail without affecting
// the other.
var (
	versionPattern  = regexp.MustCompile(`Version:\s*(?:<b>)?(\d+)\.(\d+)`)
	revisionPattern = regexp.MustCompile(`\(([0-9a-f]{12})\)`)
)

// ExtractVersionInfo pulls the documentation version and revision tag
// out of the version-info document. A pattern that fails yields its
// zero value and a warning; an index with an unknown version is still
// usable locally but never selected as a version-exact match.
func ExtractVersionInfo(doc []byte) (v quicksearch.Version, revision string, warnings []string) {
	if m := versionPattern.FindSubmatch(doc); m != nil {
		major, _ := strconv.Atoi(string(m[1]))
		minor, _ := strconv.Atoi(string(m[2]))
		v = quicksearch.Version{Major: major, Minor: minor}
	} else {
		warnings = append(warnings, "version pattern not found in version info document")
	}
	if m := revisionPattern.FindSubmatch(doc); m != nil {
		revision = string(m[1])
	} else {
		warnings = append(warnings, "revision pattern not found in version info document")
	}
	return v, revision, warnings
}
