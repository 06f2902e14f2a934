package repository

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository/converter"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order_queries.go -package=repositorymock

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	LockOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	LockOrderByPaymentIntentID(ctx context.Context, db sqlc.DBTX, paymentIntentID pgtype.Text) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	UpdateOrderState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStateParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for _, item := range converter.OrderItemsToParams(o) {
		if err := r.queries.CreateOrderItem(ctx, tx, item); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.LockOrderByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return r.withItems(ctx, tx, row)
}

func (r *OrderRepository) LockByPaymentIntent(ctx context.Context, tx sqlc.DBTX, intentID string) (*order.Order, error) {
	row, err := r.queries.LockOrderByPaymentIntentID(ctx, tx, pgconv.StringToPgtype(intentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found for payment intent", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order by payment intent", err)
	}
	return r.withItems(ctx, tx, row)
}

// Save persists the mutable part of the order. Items and the address are
// immutable after checkout.
func (r *OrderRepository) Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.UpdateOrderState(ctx, tx, converter.OrderToStateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	return nil
}

func (r *OrderRepository) withItems(ctx context.Context, tx sqlc.DBTX, row sqlc.Orders) (*order.Order, error) {
	items, err := r.queries.ListOrderItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return converter.OrderToDomain(row, items), nil
}
