package bbsdoc_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/bbsdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := bbsdoc.Errorf(bbsdoc.ENETWORK, "HTTP %d for %s", 503, "https://example.com")

	assert.Equal(t, bbsdoc.ENETWORK, bbsdoc.ErrorCode(err))
	assert.Equal(t, "HTTP 503 for https://example.com", bbsdoc.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch index: %w", bbsdoc.Errorf(bbsdoc.ENETWORK, "timeout"))

	assert.Equal(t, bbsdoc.ENETWORK, bbsdoc.ErrorCode(err))
	assert.Equal(t, "timeout", bbsdoc.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, bbsdoc.EINTERNAL, bbsdoc.ErrorCode(err))
	assert.Equal(t, "Internal error", bbsdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bbsdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bbsdoc.ErrorMessage(nil))
}
