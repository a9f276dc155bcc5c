package quicksearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := quicksearch.Errorf(quicksearch.ENOTFOUND, "no index found for version %q", "2019.3")

	assert.Equal(t, quicksearch.ENOTFOUND, quicksearch.ErrorCode(err))
	assert.Equal(t, "no index found for version \"2019.3\"", quicksearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quicksearch.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, quicksearch.EINTERNAL, quicksearch.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quicksearch.ErrorMessage(nil))
}
