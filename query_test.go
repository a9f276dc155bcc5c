package quicksearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// transformIndex returns a small two-page index used by most scoring
// scenarios.
func transformIndex() *quicksearch.Index {
	return &quicksearch.Index{
		Pages: []quicksearch.Page{
			{
				Title:       "Transform",
				Description: "Position, rotation and scale of an object.",
				URL:         "Transform",
				Type:        quicksearch.TypeClass,
			},
			{
				Title:       "Transform.position",
				Description: "The world space position of the Transform.",
				URL:         "Transform-position",
				Type:        quicksearch.TypeProperty,
			},
		},
		Keys: []string{"object", "position", "rotation", "scale", "transform"},
		Entries: []quicksearch.Entry{
			{Pages: []int{0}},
			{Pages: []int{0, 1}},
			{Pages: []int{0}},
			{Pages: []int{0}},
			{Pages: []int{0, 1}},
		},
	}
}

func resultFor(t *testing.T, results []quicksearch.Result, url string) quicksearch.Result {
	t.Helper()
	for _, r := range results {
		if r.Page.URL == url {
			return r
		}
	}
	t.Fatalf("no result for %q", url)
	return quicksearch.Result{}
}

func TestSearch_ExactTitleScoring(t *testing.T) {
	t.Parallel()

	// Hit count 1, title match at position 0 spanning the whole title
	// (+50 +500 +500), exact whole-query title bonus (+10000).
	results := quicksearch.Search(transformIndex(), []string{"transform"}, "transform")

	require.Len(t, results, 2)
	assert.Equal(t, 11051, resultFor(t, results, "Transform").Score)

	// The member page matches on both title boundaries (start of title,
	// followed by '.') and gets the non-exact whole-query title bonus.
	assert.Equal(t, 1251, resultFor(t, results, "Transform-position").Score)
}

func TestSearch_ObsoleteDemotion(t *testing.T) {
	t.Parallel()

	idx := &quicksearch.Index{
		Pages: []quicksearch.Page{
			{Title: "Network", Description: "Legacy networking.", URL: "Network", Type: quicksearch.TypeClass},
			{Title: "Network", Description: "Legacy networking.", URL: "Network-old", Type: quicksearch.TypeObsolete},
		},
		Keys:    []string{"network"},
		Entries: []quicksearch.Entry{{Pages: []int{0, 1}}},
	}

	results := quicksearch.Search(idx, []string{"network"}, "network")

	require.Len(t, results, 2)
	live := resultFor(t, results, "Network")
	obsolete := resultFor(t, results, "Network-old")
	assert.Equal(t, 100000, live.Score-obsolete.Score,
		"an obsolete page scores exactly 100000 below its live twin")
}

func TestSearch_PrefixMatchesEveryKey(t *testing.T) {
	t.Parallel()

	idx := &quicksearch.Index{
		Pages: []quicksearch.Page{
			{Title: "Trance", URL: "Trance"},
			{Title: "Transcode", URL: "Transcode"},
			{Title: "Transform", URL: "Transform"},
			{Title: "Translate", URL: "Translate"},
			{Title: "Trap", URL: "Trap"},
		},
		Keys:    []string{"trance", "transcode", "transform", "translate", "trap"},
		Entries: []quicksearch.Entry{{Pages: []int{0}}, {Pages: []int{1}}, {Pages: []int{2}}, {Pages: []int{3}}, {Pages: []int{4}}},
	}

	results := quicksearch.Search(idx, []string{"tran"}, "tran")

	require.Len(t, results, 4, "every tran-prefixed key must match, trap must not")
	for _, url := range []string{"Trance", "Transcode", "Transform", "Translate"} {
		resultFor(t, results, url)
	}
}

func TestSearch_ShortTokensMatchExactOnly(t *testing.T) {
	t.Parallel()

	idx := &quicksearch.Index{
		Pages: []quicksearch.Page{
			{Title: "Transform", URL: "Transform"},
			{Title: "TR", URL: "TR"},
		},
		Keys:    []string{"tr", "transform"},
		Entries: []quicksearch.Entry{{Pages: []int{1}}, {Pages: []int{0}}},
	}

	results := quicksearch.Search(idx, []string{"tr"}, "tr")

	require.Len(t, results, 1, "tokens below the prefix threshold never expand")
	assert.Equal(t, "TR", results[0].Page.URL)
}

func TestSearch_StopWordRelaxesThreshold(t *testing.T) {
	t.Parallel()

	idx := transformIndex()
	idx.Common = []string{"the"}

	results := quicksearch.Search(idx, []string{"the", "transform"}, "the transform")

	// "the" matches nothing but lowers the required match count to one,
	// so both transform pages survive.
	assert.Len(t, results, 2)
}

func TestSearch_ThresholdDropsPartialMatches(t *testing.T) {
	t.Parallel()

	results := quicksearch.Search(transformIndex(), []string{"transform", "rotation"}, "transform rotation")

	// Only the class page contains both tokens; the member page matches
	// "transform" alone and falls below the threshold.
	require.Len(t, results, 1)
	assert.Equal(t, "Transform", results[0].Page.URL)

	// Hit count 2, "transform" hits the title (+50 +500 +500) and ends
	// the token scan before "rotation" can add its description bonus.
	assert.Equal(t, 1052, results[0].Score)
}

func TestSearch_TokenOrderAffectsScore(t *testing.T) {
	t.Parallel()

	results := quicksearch.Search(transformIndex(), []string{"rotation", "transform"}, "rotation transform")

	// With "rotation" first the description bonus (position 10 →
	// max(20-10, 10)) lands before "transform" hits the title.
	require.Len(t, results, 1)
	assert.Equal(t, 1062, results[0].Score)
}

func TestSearch_DescriptionWholeQueryBonus(t *testing.T) {
	t.Parallel()

	results := quicksearch.Search(transformIndex(), []string{"rotation"}, "rotation")

	// Token description bonus max(20-10, 10) = 10, whole-query
	// description bonus max(50-10, 25) = 40.
	require.Len(t, results, 1)
	assert.Equal(t, 51, results[0].Score)
}

func TestSearch_EmptyInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quicksearch.Search(transformIndex(), nil, ""))
	assert.Empty(t, quicksearch.Search(nil, []string{"transform"}, "transform"))
}

func TestSearch_DuplicatePostingsCountOnce(t *testing.T) {
	t.Parallel()

	idx := &quicksearch.Index{
		Pages:   []quicksearch.Page{{Title: "Mesh", URL: "Mesh"}},
		Keys:    []string{"mesh"},
		Entries: []quicksearch.Entry{{Pages: []int{0, 0, 0}}},
	}

	results := quicksearch.Search(idx, []string{"mesh", "missing"}, "mesh missing")

	// Raw entries may repeat a page, but a token contributes at most
	// one hit per page, so the threshold of two is not met.
	assert.Empty(t, results)
}
