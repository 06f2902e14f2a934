//go:build unit

package infra_test

import (
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expected: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, expected: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, expected: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, expected: infra.KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expected: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.expected))
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(assert.AnError, infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
