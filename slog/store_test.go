package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
	"github.com/sttz/unity-quicksearch-docs/mock"
	qslog "github.com/sttz/unity-quicksearch-docs/slog"
)

func TestLoggingStore_Resolve(t *testing.T) {
	t.Parallel()

	idx := &quicksearch.Index{UnityVersion: quicksearch.Version{Major: 2019, Minor: 3}}
	next := &mock.IndexStore{
		ResolveFn: func(ctx context.Context, roots []string, target quicksearch.Version) (*quicksearch.Index, string, error) {
			return idx, "/cache/docs-2019.3-abc.index.json", nil
		},
	}

	var buf bytes.Buffer
	store := qslog.NewLoggingStore(next, slog.New(slog.NewTextHandler(&buf, nil)))

	got, path, err := store.Resolve(context.Background(), []string{"/cache"}, quicksearch.Version{Major: 2019, Minor: 3})
	require.NoError(t, err)
	assert.Same(t, idx, got)
	assert.Equal(t, "/cache/docs-2019.3-abc.index.json", path)

	out := buf.String()
	assert.Contains(t, out, "index resolution")
	assert.Contains(t, out, "target=2019.3")
	assert.Contains(t, out, "docs-2019.3-abc.index.json")
}

func TestLoggingStore_Resolve_Error(t *testing.T) {
	t.Parallel()

	next := &mock.IndexStore{
		ResolveFn: func(ctx context.Context, roots []string, target quicksearch.Version) (*quicksearch.Index, string, error) {
			return nil, "", quicksearch.Errorf(quicksearch.ENOTFOUND, "no index found")
		},
	}

	var buf bytes.Buffer
	store := qslog.NewLoggingStore(next, slog.New(slog.NewTextHandler(&buf, nil)))

	_, _, err := store.Resolve(context.Background(), nil, quicksearch.Version{})
	require.Error(t, err)
	assert.Equal(t, quicksearch.ENOTFOUND, quicksearch.ErrorCode(err))
	assert.Contains(t, buf.String(), "no index found")
}

func TestLoggingStore_Scan(t *testing.T) {
	t.Parallel()

	want := []quicksearch.Candidate{{Path: "/cache/docs-2019.3-abc.index.json"}}
	next := &mock.IndexStore{
		ScanFn: func(ctx context.Context, roots []string) ([]quicksearch.Candidate, error) {
			return want, nil
		},
	}

	var buf bytes.Buffer
	store := qslog.NewLoggingStore(next, slog.New(slog.NewTextHandler(&buf, nil)))

	got, err := store.Scan(context.Background(), []string{"/cache"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	out := buf.String()
	assert.Contains(t, out, "artifact scan")
	assert.Contains(t, out, "roots=1")
	assert.Contains(t, out, "candidates=1")
}
