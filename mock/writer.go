package mock

import (
	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

var _ quicksearch.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of quicksearch.IndexWriter.
type IndexWriter struct {
	WriteFn func(dir string, idx *quicksearch.Index) (string, error)
}

func (w *IndexWriter) Write(dir string, idx *quicksearch.Index) (string, error) {
	return w.WriteFn(dir, idx)
}
