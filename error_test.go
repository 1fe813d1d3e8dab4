package letterfreq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/letterfreq"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := letterfreq.Errorf(letterfreq.ENOTFOUND, "report %q not found", "test")

	assert.Equal(t, letterfreq.ENOTFOUND, letterfreq.ErrorCode(err))
	assert.Equal(t, "report \"test\" not found", letterfreq.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("read links: %w", letterfreq.Errorf(letterfreq.EUNAVAILABLE, "connection refused"))

	assert.Equal(t, letterfreq.EUNAVAILABLE, letterfreq.ErrorCode(err))
	assert.Equal(t, "connection refused", letterfreq.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, letterfreq.EINTERNAL, letterfreq.ErrorCode(err))
	assert.Equal(t, "Internal error", letterfreq.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, letterfreq.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, letterfreq.ErrorMessage(nil))
}
