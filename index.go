package quicksearch

import "slices"

// Entry is the posting list for one index term: the positions of every
// page the term occurs in. Duplicate positions are tolerated (the raw
// input makes no guarantee) and collapsed during matching.
type Entry struct {
	Pages []int `json:"pages"`
}

// Index is an immutable, versioned snapshot of the searchable corpus.
// Keys is sorted ascending by ordinal comparison with no duplicates and
// Entries parallels it: Entries[i] lists the pages containing Keys[i].
// An index is never mutated after build; concurrent readers share it
// freely.
type Index struct {
	Pages        []Page   `json:"pages"`
	Common       []string `json:"common"`
	UnityVersion Version  `json:"unityVersion"`
	DocsVersion  string   `json:"docsVersion"`
	Keys         []string `json:"indexKeys"`
	Entries      []Entry  `json:"indexValues"`
}

// Validate checks the structural invariants the query side relies on.
// Violations return ECORRUPT-coded errors.
func (idx *Index) Validate() error {
	if len(idx.Keys) != len(idx.Entries) {
		return Errorf(ECORRUPT, "index keys/entries length mismatch: %d != %d", len(idx.Keys), len(idx.Entries))
	}
	for i := 1; i < len(idx.Keys); i++ {
		if idx.Keys[i-1] >= idx.Keys[i] {
			return Errorf(ECORRUPT, "index keys not strictly sorted at %d: %q >= %q", i, idx.Keys[i-1], idx.Keys[i])
		}
	}
	for i, entry := range idx.Entries {
		for _, p := range entry.Pages {
			if p < 0 || p >= len(idx.Pages) {
				return Errorf(ECORRUPT, "term %q references page %d outside [0, %d)", idx.Keys[i], p, len(idx.Pages))
			}
		}
	}
	return nil
}

// IsCommon reports whether token is a stop word. Stop words never
// contribute to a query's positive match score but still relax the
// minimum-match threshold.
func (idx *Index) IsCommon(token string) bool {
	return slices.Contains(idx.Common, token)
}
