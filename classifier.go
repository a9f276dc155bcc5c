package quicksearch

import "context"

// TypeCache memoizes page classifications for one build. The cache is
// more than an optimization: classifying a type page caches an entry for
// every member link found in its member-list sections, and that is the
// only channel through which member pages learn their type. One cache
// must be shared across an entire build and passed explicitly through
// every call so separate builds never cross-contaminate.
type TypeCache map[string]PageType

// Classifier infers the structural category of a documentation page
// from its source document and its parent/child relationships.
type Classifier interface {
	// Classify determines the PageType for the page identified by its
	// relative url. It never fails outward: unresolvable pages classify
	// as TypeUnknown and are reported through diagnostics.
	Classify(ctx context.Context, url string, cache TypeCache) PageType
}
