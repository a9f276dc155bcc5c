// Package bloom provides a fast token presence filter over index terms.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Ensure TokenFilter implements quicksearch.TokenFilter at compile time.
var _ quicksearch.TokenFilter = (*TokenFilter)(nil)

// TokenFilter wraps a Bloom filter over the exact terms of an index.
// It answers whether a query token might be an index term so that
// definitely-absent tokens skip the term lookup entirely.
type TokenFilter struct {
	f *bloom.BloomFilter
}

// NewTokenFilter builds a filter over the given terms with the given
// false positive rate.
func NewTokenFilter(terms []string, fpRate float64) *TokenFilter {
	n := uint(len(terms))
	if n == 0 {
		n = 1
	}
	f := bloom.NewWithEstimates(n, fpRate)
	for _, term := range terms {
		f.AddString(term)
	}
	return &TokenFilter{f: f}
}

// Test returns true if the token might be an index term.
// False positives are possible; false negatives are not.
func (f *TokenFilter) Test(token string) bool {
	return f.f.TestString(token)
}
