package main

import (
	"fmt"
	"sort"
	"strings"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
	"github.com/sttz/unity-quicksearch-docs/bloom"
	qslog "github.com/sttz/unity-quicksearch-docs/slog"
)

// tokenFilterRate is the false positive rate for the engine's token
// presence filter.
const tokenFilterRate = 0.01

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	roots := c.Roots
	if len(roots) == 0 {
		roots = deps.Config.Roots
	}
	if len(roots) == 0 {
		return fmt.Errorf("no search roots configured: pass --roots or set roots in the config file")
	}

	var target quicksearch.Version
	spec := c.Version
	if spec == "" {
		spec = deps.Config.Version
	}
	if spec != "" {
		// Accept both the artifact form ("2019.3") and the full platform
		// version reported by an editor install ("2019.3.7f1").
		parse := quicksearch.ParseVersion
		if strings.Count(spec, ".") >= 2 {
			parse = quicksearch.ParsePlatformVersion
		}
		var err error
		target, err = parse(spec)
		if err != nil {
			return fmt.Errorf("invalid target version %q: %s", spec, quicksearch.ErrorMessage(err))
		}
	}

	engine := &quicksearch.Engine{
		Store:  deps.Store,
		Roots:  roots,
		Target: target,
		Logger: deps.Logger,
		NewFilter: func(terms []string) quicksearch.TokenFilter {
			return bloom.NewTokenFilter(terms, tokenFilterRate)
		},
	}
	searcher := qslog.NewLoggingSearcher(engine, deps.Logger)

	rawQuery := strings.Join(c.Query, " ")
	results, err := searcher.Search(deps.Ctx, quicksearch.Tokenize(rawQuery), rawQuery)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	// Ranking is the caller's job: the engine returns an unordered
	// multiset of scored pages.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Page.Title < results[j].Page.Title
	})
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}

	if idx, path := engine.Active(); idx != nil {
		fmt.Fprintf(deps.Stdout, "Index %s (%s) at %s\n", idx.UnityVersion, revisionOrUnknown(idx.DocsVersion), path)
	}
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%8d  %-12s %s  %s\n", r.Score, r.Page.Type, r.Page.Title, r.Page.URL)
	}
	return nil
}
