package mock

import (
	"context"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

var _ quicksearch.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of quicksearch.IndexStore.
type IndexStore struct {
	ResolveFn func(ctx context.Context, roots []string, target quicksearch.Version) (*quicksearch.Index, string, error)
	ScanFn    func(ctx context.Context, roots []string) ([]quicksearch.Candidate, error)
}

func (s *IndexStore) Resolve(ctx context.Context, roots []string, target quicksearch.Version) (*quicksearch.Index, string, error) {
	return s.ResolveFn(ctx, roots, target)
}

func (s *IndexStore) Scan(ctx context.Context, roots []string) ([]quicksearch.Candidate, error) {
	return s.ScanFn(ctx, roots)
}
