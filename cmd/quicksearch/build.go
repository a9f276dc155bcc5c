package main

import (
	"fmt"
	"os"
	"path/filepath"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
	"github.com/sttz/unity-quicksearch-docs/build"
	"github.com/sttz/unity-quicksearch-docs/fs"
	"github.com/sttz/unity-quicksearch-docs/goquery"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Data)
	if err != nil {
		return fmt.Errorf("failed to open raw search data: %w", err)
	}
	defer f.Close()

	raw, err := build.ParseRawData(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quicksearch.ErrorMessage(err))
		return err
	}

	versionDocPath := c.VersionDoc
	if versionDocPath == "" {
		versionDocPath = filepath.Join(c.Docs, "index.html")
	}
	versionDoc, err := os.ReadFile(versionDocPath)
	if err != nil {
		// Version extraction is best-effort; the build proceeds with
		// the unknown sentinel.
		deps.Logger.Warn("version info document unreadable", "path", versionDocPath, "err", err)
	}

	builder := &build.Builder{
		Classifier: goquery.NewClassifier(c.Docs, deps.Logger),
		Writer:     fs.NewWriter(),
		Logger:     deps.Logger,
	}
	report, err := builder.Build(deps.Ctx, raw, versionDoc, c.Out)
	if err != nil {
		return err
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", w)
	}
	fmt.Fprintf(deps.Stdout, "Built %s: version %s (%s), %d pages, %d terms, %d unclassified\n",
		report.Path, report.Version, revisionOrUnknown(report.DocsVersion),
		report.Pages, report.Terms, report.Unclassified)
	return nil
}

func revisionOrUnknown(revision string) string {
	if revision == "" {
		return "unknown revision"
	}
	return revision
}
