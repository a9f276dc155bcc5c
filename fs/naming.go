// Package fs stores index artifacts as checksummed JSON files and
// resolves the best artifact for a target Unity version from candidate
// root directories.
package fs

import (
	"fmt"
	"regexp"
	"strconv"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Index artifacts are named so that the documentation version and
// revision tag are recoverable from the filename alone:
//
//	docs-<major>.<minor>-<revision>.index.json
var nameRe = regexp.MustCompile(`^docs-(\d+)\.(\d+)-(.+)\.index\.json$`)

// unknownRevision substitutes for an empty revision tag in filenames.
const unknownRevision = "unknown"

// ArtifactName returns the canonical artifact filename for a version
// and revision tag.
func ArtifactName(v quicksearch.Version, revision string) string {
	if revision == "" {
		revision = unknownRevision
	}
	return fmt.Sprintf("docs-%d.%d-%s.index.json", v.Major, v.Minor, revision)
}

// ParseArtifactName extracts the version and revision tag from an
// artifact filename. ok is false for files that are not index
// artifacts.
func ParseArtifactName(name string) (v quicksearch.Version, revision string, ok bool) {
	m := nameRe.FindStringSubmatch(name)
	if m == nil {
		return quicksearch.Version{}, "", false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return quicksearch.Version{}, "", false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return quicksearch.Version{}, "", false
	}
	return quicksearch.Version{Major: major, Minor: minor}, m[3], true
}
