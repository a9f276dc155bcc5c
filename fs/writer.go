package fs

import (
	"os"
	"path/filepath"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Ensure Writer implements quicksearch.IndexWriter at compile time.
var _ quicksearch.IndexWriter = (*Writer)(nil)

// Writer persists built indexes as artifact files with atomic update
// semantics: the artifact is encoded into a temp file and renamed into
// place, so an aborted build leaves no partial artifact behind.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes idx into dir under its canonical artifact name and
// returns the final path.
func (w *Writer) Write(dir string, idx *quicksearch.Index) (string, error) {
	name := ArtifactName(idx.UnityVersion, idx.DocsVersion)
	final := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, idx); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", err
	}
	return final, nil
}
