//go:build unit

package password_test

import (
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestUnusableHash(t *testing.T) {
	first, err := password.UnusableHash()
	require.NoError(t, err)
	second, err := password.UnusableHash()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.ErrorIs(t, password.ComparePassword(first, ""), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword(first, "password123"), password.ErrComparisonFailed)
}
