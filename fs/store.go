package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Ensure Store implements quicksearch.IndexStore at compile time.
var _ quicksearch.IndexStore = (*Store)(nil)

// Store resolves index artifacts from candidate root directories.
// Roots are scanned in caller priority order; root order itself is the
// primary tie-break, so an earlier root always wins over a later one
// regardless of version closeness.
type Store struct {
	Logger *slog.Logger
}

// NewStore creates a new Store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{Logger: logger}
}

// Scan implements quicksearch.IndexStore. Missing or unreadable roots
// are skipped, not errors.
func (s *Store) Scan(ctx context.Context, roots []string) ([]quicksearch.Candidate, error) {
	var out []quicksearch.Candidate
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, scanRoot(root)...)
	}
	return out, nil
}

// Resolve implements quicksearch.IndexStore.
func (s *Store) Resolve(ctx context.Context, roots []string, target quicksearch.Version) (*quicksearch.Index, string, error) {
	for _, root := range roots {
		candidates := rankCandidates(scanRoot(root), target)
		for _, cand := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, "", err
			}
			idx, err := loadArtifact(cand.Path)
			if err != nil {
				s.log().Warn("skipping unusable index artifact",
					"path", cand.Path,
					"version", cand.Version.String(),
					"err", err,
				)
				continue
			}
			return idx, cand.Path, nil
		}
	}
	return nil, "", quicksearch.Errorf(quicksearch.ENOTFOUND, "no index found for version %s in %d root(s)", target, len(roots))
}

// scanRoot lists the parseable index artifacts in one root directory.
func scanRoot(root string) []quicksearch.Candidate {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var out []quicksearch.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		v, revision, ok := ParseArtifactName(entry.Name())
		if !ok {
			continue
		}
		out = append(out, quicksearch.Candidate{
			Path:        filepath.Join(root, entry.Name()),
			Version:     v,
			DocsVersion: revision,
		})
	}
	return out
}

// rankCandidates orders one root's candidates by preference: an exact
// version match first, then newer versions closest-first, then older
// versions closest-first. Loading tries them in this order so a corrupt
// best candidate falls back to the next best.
func rankCandidates(candidates []quicksearch.Candidate, target quicksearch.Version) []quicksearch.Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Version, candidates[j].Version
		ca, cb := versionClass(a, target), versionClass(b, target)
		if ca != cb {
			return ca < cb
		}
		switch ca {
		case classNewer:
			return a.Less(b)
		case classOlder:
			return b.Less(a)
		}
		return false
	})
	return candidates
}

const (
	classExact = iota
	classNewer
	classOlder
)

func versionClass(v, target quicksearch.Version) int {
	switch {
	// The zero version is the unknown sentinel; it never matches
	// exactly, even against a zero target.
	case v == target && !v.IsZero():
		return classExact
	case target.Less(v):
		return classNewer
	}
	return classOlder
}

func loadArtifact(path string) (*quicksearch.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func (s *Store) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
