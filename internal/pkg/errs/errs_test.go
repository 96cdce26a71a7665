//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"carrental-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("no rows")
		marked := errs.Mark(errs.Wrap(cause, "find car"), errs.ErrCarNotFound)

		assert.True(t, errs.Is(marked, errs.ErrCarNotFound))
		assert.True(t, errors.Is(marked, cause))
		assert.Contains(t, marked.Error(), "find car")
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrCarNotBookable, errs.Mark(nil, errs.ErrCarNotBookable))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "outer")

	lines := errs.ExtractStackLines(err, 2)
	assert.Len(t, lines, 2)
	assert.Nil(t, errs.ExtractStackLines(nil, 5))
}
