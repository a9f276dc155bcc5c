// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Ensure LoggingStore implements quicksearch.IndexStore.
var _ quicksearch.IndexStore = (*LoggingStore)(nil)

// LoggingStore wraps an IndexStore with operation logging.
type LoggingStore struct {
	next   quicksearch.IndexStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next quicksearch.IndexStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Resolve delegates to the wrapped store and logs the resolution.
func (s *LoggingStore) Resolve(ctx context.Context, roots []string, target quicksearch.Version) (idx *quicksearch.Index, path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("index resolution",
			"target", target.String(),
			"roots", len(roots),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, roots, target)
}

// Scan delegates to the wrapped store and logs the scan.
func (s *LoggingStore) Scan(ctx context.Context, roots []string) (candidates []quicksearch.Candidate, err error) {
	defer func(begin time.Time) {
		s.logger.Info("artifact scan",
			"roots", len(roots),
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx, roots)
}
