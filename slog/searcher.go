package slog

import (
	"context"
	"log/slog"
	"time"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Ensure LoggingSearcher implements quicksearch.Searcher.
var _ quicksearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with query logging.
type LoggingSearcher struct {
	next   quicksearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next quicksearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Search(ctx context.Context, tokens []string, rawQuery string) (results []quicksearch.Result, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", rawQuery,
			"tokens", len(tokens),
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, tokens, rawQuery)
}
