package main

import (
	"context"
	"io"
	"log/slog"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config
	Store  quicksearch.IndexStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Build    BuildCmd    `cmd:"" help:"Build an index artifact from raw documentation data"`
	Search   SearchCmd   `cmd:"" help:"Search the best-matching index for a query"`
	Versions VersionsCmd `cmd:"" help:"List index artifacts found in the search roots"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Data       string `arg:"" help:"Raw search data JSON file"`
	Docs       string `arg:"" help:"Documentation HTML root directory"`
	Out        string `short:"o" default:"." help:"Output directory for the index artifact"`
	VersionDoc string `help:"Version-info document (default: <docs>/index.html)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   []string `arg:"" help:"Query terms"`
	Roots   []string `short:"r" help:"Index search roots in priority order (overrides config)"`
	Version string   `short:"V" help:"Target Unity version, major.minor or a full platform version (overrides config)"`
	Limit   int      `short:"n" default:"10" help:"Maximum results to print"`
}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct {
	Roots []string `short:"r" help:"Index search roots in priority order (overrides config)"`
}
