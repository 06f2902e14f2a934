package repository

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=stock.go -destination=../../../tests/mock/repository/stock_queries.go -package=repositorymock

type StockWriteQueries interface {
	LockProductStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
	LockVariantStock(ctx context.Context, db sqlc.DBTX, arg sqlc.LockVariantStockParams) (int32, error)
	DecrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementProductStockParams) (int64, error)
	DecrementVariantStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementVariantStockParams) (int64, error)
}

// StockRepository reads and decrements on-hand stock. Variant SKUs keep
// their own stock column; plain products use the product row.
type StockRepository struct {
	queries StockWriteQueries
	db      sqlc.DBTX
}

func NewStockRepository(queries StockWriteQueries, db sqlc.DBTX) *StockRepository {
	return &StockRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StockRepository) Lock(ctx context.Context, tx sqlc.DBTX, sku reservation.SKU) (int, error) {
	var (
		stock int32
		err   error
	)
	if sku.VariantID != nil {
		stock, err = r.queries.LockVariantStock(ctx, tx, sqlc.LockVariantStockParams{
			ID:        *sku.VariantID,
			ProductID: sku.ProductID,
		})
	} else {
		stock, err = r.queries.LockProductStock(ctx, tx, sku.ProductID)
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to lock stock row", err)
	}
	return int(stock), nil
}

func (r *StockRepository) Decrement(ctx context.Context, tx sqlc.DBTX, sku reservation.SKU, quantity int) (bool, error) {
	qty := int32(quantity) // #nosec G115 -- quantities are validated upstream

	var (
		affected int64
		err      error
	)
	if sku.VariantID != nil {
		affected, err = r.queries.DecrementVariantStock(ctx, tx, sqlc.DecrementVariantStockParams{Quantity: qty, ID: *sku.VariantID})
	} else {
		affected, err = r.queries.DecrementProductStock(ctx, tx, sqlc.DecrementProductStockParams{Quantity: qty, ID: sku.ProductID})
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return affected == 1, nil
}
