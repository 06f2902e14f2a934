package repository

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/cart"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/repository/cart_queries.go -package=repositorymock

type CartWriteQueries interface {
	FindCartByUserID(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) (sqlc.Carts, error)
	FindCartBySessionID(ctx context.Context, db sqlc.DBTX, sessionID pgtype.Text) (sqlc.Carts, error)
	ListCartItemsWithProduct(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartItemsWithProductRow, error)
	ClearCartItems(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) error
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

// FindForCheckout prefers the account cart and falls back to the anonymous
// session cart. A missing cart is reported as NOT_FOUND.
func (r *CartRepository) FindForCheckout(ctx context.Context, tx sqlc.DBTX, userID *uuid.UUID, sessionID string) (*cart.Cart, error) {
	row, err := r.findCart(ctx, tx, userID, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	rows, err := r.queries.ListCartItemsWithProduct(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	items := make([]cart.Item, len(rows))
	for i, it := range rows {
		items[i] = cart.Item{
			ID:             it.ID,
			ProductID:      it.ProductID,
			VariantID:      pgconv.UUIDPtrFromPgtype(it.VariantID),
			ProductName:    it.ProductName,
			Quantity:       int(it.Quantity),
			UnitPriceCents: it.UnitPriceCents,
			WeightGrams:    int(it.WeightGrams),
		}
	}

	return cart.Reconstruct(row.ID, pgconv.UUIDPtrFromPgtype(row.UserID), pgconv.StringPtrFromPgtype(row.SessionID), items), nil
}

func (r *CartRepository) findCart(ctx context.Context, tx sqlc.DBTX, userID *uuid.UUID, sessionID string) (sqlc.Carts, error) {
	if userID != nil {
		row, err := r.queries.FindCartByUserID(ctx, tx, pgconv.UUIDToPgtype(*userID))
		if err == nil || !pgconv.IsNoRows(err) || sessionID == "" {
			return row, err
		}
	}
	if sessionID == "" {
		return sqlc.Carts{}, pgx.ErrNoRows
	}
	return r.queries.FindCartBySessionID(ctx, tx, pgconv.StringToPgtype(sessionID))
}

func (r *CartRepository) ClearItems(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	if err := r.queries.ClearCartItems(ctx, tx, cartID); err != nil {
		return infra.WrapRepoErr("failed to clear cart items", err)
	}
	return nil
}
