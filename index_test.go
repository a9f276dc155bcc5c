package quicksearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

func TestIndex_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *quicksearch.Index {
		return &quicksearch.Index{
			Pages: []quicksearch.Page{
				{Title: "Transform", URL: "Transform", Type: quicksearch.TypeClass},
				{Title: "Transform.position", URL: "Transform-position", Type: quicksearch.TypeProperty},
			},
			Keys: []string{"position", "transform"},
			Entries: []quicksearch.Entry{
				{Pages: []int{1}},
				{Pages: []int{0, 1}},
			},
		}
	}

	t.Run("accepts a well-formed index", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects keys/entries length mismatch", func(t *testing.T) {
		t.Parallel()

		idx := valid()
		idx.Entries = idx.Entries[:1]

		err := idx.Validate()

		assert.Equal(t, quicksearch.ECORRUPT, quicksearch.ErrorCode(err))
	})

	t.Run("rejects unsorted keys", func(t *testing.T) {
		t.Parallel()

		idx := valid()
		idx.Keys = []string{"transform", "position"}

		err := idx.Validate()

		assert.Equal(t, quicksearch.ECORRUPT, quicksearch.ErrorCode(err))
	})

	t.Run("rejects duplicate keys", func(t *testing.T) {
		t.Parallel()

		idx := valid()
		idx.Keys = []string{"position", "position"}

		err := idx.Validate()

		assert.Equal(t, quicksearch.ECORRUPT, quicksearch.ErrorCode(err))
	})

	t.Run("rejects out-of-range page references", func(t *testing.T) {
		t.Parallel()

		idx := valid()
		idx.Entries[0].Pages = []int{7}

		err := idx.Validate()

		assert.Equal(t, quicksearch.ECORRUPT, quicksearch.ErrorCode(err))
	})
}

func TestIndex_IsCommon(t *testing.T) {
	t.Parallel()

	idx := &quicksearch.Index{Common: []string{"the", "of"}}

	assert.True(t, idx.IsCommon("the"))
	assert.False(t, idx.IsCommon("transform"))
}
