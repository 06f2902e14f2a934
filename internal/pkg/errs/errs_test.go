//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	errOutOfStock := errs.New("out of stock")
	errBusy := errs.New("busy")
	cause := errs.New("sku locked")
	marked := errs.Mark(cause, errOutOfStock)

	assert.True(t, errs.Is(marked, errOutOfStock))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errBusy))

	wrapped := errs.Wrap(marked, "checkout")
	assert.True(t, errs.Is(wrapped, errOutOfStock))
	assert.False(t, errs.Is(errors.New("plain"), errOutOfStock))
}

func TestMarkNil(t *testing.T) {
	errNotFound := errs.New("not found")
	assert.Equal(t, errNotFound, errs.Mark(nil, errNotFound))
	assert.NoError(t, errs.Wrap(nil, "noop"))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
