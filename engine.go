package quicksearch

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Searcher answers scored queries against the active index.
type Searcher interface {
	// Search matches the lowercase tokens against the active index and
	// returns unordered scored results. Absence of a usable index
	// degrades to empty results, never an error.
	Search(ctx context.Context, tokens []string, rawQuery string) ([]Result, error)
}

// TokenFilter answers whether a token can possibly be an exact index
// term. False positives are allowed; false negatives are not, so a
// negative answer safely skips the term lookup.
type TokenFilter interface {
	Test(token string) bool
}

// Ensure Engine implements Searcher at compile time.
var _ Searcher = (*Engine)(nil)

// active pairs a loaded index with its source path and optional token
// filter so queries always see a consistent triple.
type active struct {
	index  *Index
	path   string
	filter TokenFilter
}

// Engine holds the process-wide active index and executes queries
// against it. Replacing the active index is an atomic pointer swap, so
// in-flight queries see either the old or the new index in full. When
// no index is loaded the first query triggers resolution; concurrent
// first queries share a single resolution via singleflight.
type Engine struct {
	Store  IndexStore
	Roots  []string
	Target Version
	Logger *slog.Logger

	// NewFilter, if set, builds a token presence filter over the index
	// terms whenever a new index is activated.
	NewFilter func(terms []string) TokenFilter

	current atomic.Pointer[active]
	group   singleflight.Group
}

// Load resolves and activates the best index for the engine's target
// version, fully replacing any previously active index.
func (e *Engine) Load(ctx context.Context) error {
	idx, path, err := e.Store.Resolve(ctx, e.Roots, e.Target)
	if err != nil {
		return err
	}
	a := &active{index: idx, path: path}
	if e.NewFilter != nil {
		a.filter = e.NewFilter(idx.Keys)
	}
	e.current.Store(a)
	return nil
}

// Active returns the currently loaded index and its source path, or
// (nil, "") when no index is active.
func (e *Engine) Active() (*Index, string) {
	a := e.current.Load()
	if a == nil {
		return nil, ""
	}
	return a.index, a.path
}

// Search implements Searcher. A missing index is resolved lazily; if
// resolution fails the query answers empty rather than erroring, and a
// later query retries.
func (e *Engine) Search(ctx context.Context, tokens []string, rawQuery string) ([]Result, error) {
	a := e.current.Load()
	if a == nil {
		if _, err, _ := e.group.Do("resolve", func() (any, error) {
			return nil, e.Load(ctx)
		}); err != nil {
			e.log().Warn("no index available", "target", e.Target, "err", err)
			return nil, nil
		}
		a = e.current.Load()
		if a == nil {
			return nil, nil
		}
	}
	return search(a.index, tokens, rawQuery, a.filter), nil
}

func (e *Engine) log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
