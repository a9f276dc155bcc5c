package build

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	"github.com/google/uuid"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Builder orchestrates one full index build: raw-data ingestion,
// term-map materialization, page classification and artifact
// serialization. A build is a single-threaded, one-shot batch job;
// each page classification is a cancellation checkpoint.
type Builder struct {
	Classifier quicksearch.Classifier
	Writer     quicksearch.IndexWriter
	Logger     *slog.Logger
}

// Report summarizes one build invocation. Classification failures are
// diagnostics, not errors: the build succeeds partially and the report
// carries the counts.
type Report struct {
	BuildID      uuid.UUID
	Path         string
	Version      quicksearch.Version
	DocsVersion  string
	Pages        int
	Terms        int
	Unclassified int
	Warnings     []string
}

// Build produces one index artifact in outDir from validated raw data
// and the version-info document. The whole build fails on invalid raw
// input or a write error; version extraction failures downgrade to
// warnings and leave the unknown sentinel in place.
func (b *Builder) Build(ctx context.Context, raw *RawData, versionDoc []byte, outDir string) (*Report, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	report := &Report{BuildID: uuid.New()}
	b.log().Info("build started",
		"id", report.BuildID,
		"pages", len(raw.Pages),
		"terms", len(raw.SearchIndex),
	)

	idx := &quicksearch.Index{
		Common: slices.Clone(raw.Common),
	}

	// Materialize the term map as co-sorted parallel key/entry slices:
	// keys sorted ascending, each entry staying with its key.
	keys := make([]string, 0, len(raw.SearchIndex))
	for term := range raw.SearchIndex {
		keys = append(keys, term)
	}
	sort.Strings(keys)
	entries := make([]quicksearch.Entry, len(keys))
	for i, term := range keys {
		entries[i] = quicksearch.Entry{Pages: raw.SearchIndex[term]}
	}
	idx.Keys, idx.Entries = keys, entries

	// Classify every page through one shared cache. The cache makes the
	// loop O(pages) amortized despite the recursive parent lookups, and
	// carries the member types discovered while classifying type pages.
	cache := make(quicksearch.TypeCache, len(raw.Pages))
	pages := make([]quicksearch.Page, len(raw.Pages))
	for i, rp := range raw.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		typ := b.Classifier.Classify(ctx, rp.URL, cache)
		if typ == quicksearch.TypeUnknown {
			report.Unclassified++
		}
		pages[i] = quicksearch.Page{
			Title:       rp.Title,
			Description: raw.Info[i].Description,
			URL:         rp.URL,
			Type:        typ,
		}
	}
	idx.Pages = pages

	version, revision, warnings := ExtractVersionInfo(versionDoc)
	for _, w := range warnings {
		b.log().Warn(w, "id", report.BuildID)
	}
	report.Warnings = warnings
	idx.UnityVersion, idx.DocsVersion = version, revision

	if err := idx.Validate(); err != nil {
		return nil, err
	}

	path, err := b.Writer.Write(outDir, idx)
	if err != nil {
		return nil, err
	}

	report.Path = path
	report.Version = version
	report.DocsVersion = revision
	report.Pages = len(pages)
	report.Terms = len(keys)
	b.log().Info("build finished",
		"id", report.BuildID,
		"path", path,
		"version", version,
		"unclassified", report.Unclassified,
	)
	return report, nil
}

func (b *Builder) log() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
