package mock

import (
	"context"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

var _ quicksearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of quicksearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, tokens []string, rawQuery string) ([]quicksearch.Result, error)
}

func (s *Searcher) Search(ctx context.Context, tokens []string, rawQuery string) ([]quicksearch.Result, error) {
	return s.SearchFn(ctx, tokens, rawQuery)
}
