package readstore

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutSessionReadQueries interface {
	FindCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.FindCheckoutSessionParams) (sqlc.CheckoutSessions, error)
}

type CheckoutSessionReadStore struct {
	queries CheckoutSessionReadQueries
	db      sqlc.DBTX
}

func NewCheckoutSessionReadStore(queries CheckoutSessionReadQueries, db sqlc.DBTX) *CheckoutSessionReadStore {
	return &CheckoutSessionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CheckoutSessionReadStore) Find(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*shared.CheckoutSessionSnapshot, error) {
	row, err := r.queries.FindCheckoutSession(ctx, r.db, sqlc.FindCheckoutSessionParams{
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find checkout session", err)
	}
	return repository.ToCheckoutSessionSnapshot(row), nil
}
