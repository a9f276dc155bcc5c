package quicksearch

import "context"

// Candidate describes an index artifact discovered in a search root,
// identified by filename alone without opening the file.
type Candidate struct {
	Path        string
	Version     Version
	DocsVersion string
}

// IndexStore finds and loads index artifacts from candidate root
// directories.
type IndexStore interface {
	// Resolve scans roots in caller priority order and loads the best
	// index for target: an exact version match first, else the closest
	// newer version, else the closest older one. The first root that
	// yields a usable index wins regardless of version closeness in
	// later roots. Unusable (corrupt) candidates are skipped. Returns
	// the loaded index and its source path, or an ENOTFOUND-coded error
	// when no root yields a usable candidate.
	Resolve(ctx context.Context, roots []string, target Version) (*Index, string, error)

	// Scan lists the parseable candidate artifacts in roots, in
	// discovery order, without loading them.
	Scan(ctx context.Context, roots []string) ([]Candidate, error)
}

// IndexWriter persists a built index as an artifact file and returns
// the path it was written to.
type IndexWriter interface {
	Write(dir string, idx *Index) (string, error)
}
