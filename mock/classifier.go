package mock

import (
	"context"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

var _ quicksearch.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of quicksearch.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, url string, cache quicksearch.TypeCache) quicksearch.PageType
}

func (c *Classifier) Classify(ctx context.Context, url string, cache quicksearch.TypeCache) quicksearch.PageType {
	return c.ClassifyFn(ctx, url, cache)
}
