package repository

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=checkout_session.go -destination=../../../tests/mock/repository/checkout_session_queries.go -package=repositorymock

type CheckoutSessionWriteQueries interface {
	CreateCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCheckoutSessionParams) (uuid.UUID, error)
	FindCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.FindCheckoutSessionParams) (sqlc.CheckoutSessions, error)
	CompleteCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteCheckoutSessionParams) error
	SetCheckoutSessionPaymentIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCheckoutSessionPaymentIntentParams) error
}

// CheckoutSessionRepository stores the (user, idempotency key) claim that
// makes checkout replay-safe.
type CheckoutSessionRepository struct {
	queries CheckoutSessionWriteQueries
	db      sqlc.DBTX
}

func NewCheckoutSessionRepository(queries CheckoutSessionWriteQueries, db sqlc.DBTX) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with DUPLICATE_KEY when the key was already claimed.
func (r *CheckoutSessionRepository) Create(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, idempotencyKey string) (uuid.UUID, error) {
	id, err := r.queries.CreateCheckoutSession(ctx, tx, sqlc.CreateCheckoutSessionParams{
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create checkout session", err)
	}
	return id, nil
}

func (r *CheckoutSessionRepository) Find(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, idempotencyKey string) (*shared.CheckoutSessionSnapshot, error) {
	row, err := r.queries.FindCheckoutSession(ctx, tx, sqlc.FindCheckoutSessionParams{
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find checkout session", err)
	}
	return ToCheckoutSessionSnapshot(row), nil
}

func (r *CheckoutSessionRepository) Complete(ctx context.Context, tx sqlc.DBTX, sessionID, orderID uuid.UUID, totalCents int64) error {
	err := r.queries.CompleteCheckoutSession(ctx, tx, sqlc.CompleteCheckoutSessionParams{
		ID:         sessionID,
		OrderID:    pgconv.UUIDToPgtype(orderID),
		TotalCents: pgtype.Int8{Int64: totalCents, Valid: true},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete checkout session", err)
	}
	return nil
}

func (r *CheckoutSessionRepository) SetPaymentIntent(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, intentID string, totalCents int64) error {
	err := r.queries.SetCheckoutSessionPaymentIntent(ctx, tx, sqlc.SetCheckoutSessionPaymentIntentParams{
		OrderID:         pgconv.UUIDToPgtype(orderID),
		PaymentIntentID: pgconv.StringToPgtype(intentID),
		TotalCents:      pgtype.Int8{Int64: totalCents, Valid: true},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record payment intent on checkout session", err)
	}
	return nil
}

func ToCheckoutSessionSnapshot(row sqlc.CheckoutSessions) *shared.CheckoutSessionSnapshot {
	return &shared.CheckoutSessionSnapshot{
		ID:              row.ID,
		UserID:          row.UserID,
		IdempotencyKey:  row.IdempotencyKey,
		OrderID:         pgconv.UUIDPtrFromPgtype(row.OrderID),
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		TotalCents:      pgconv.Int64PtrFromPgtype(row.TotalCents),
	}
}
