package readstore

import (
	"context"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order_queries.go -package=readstoremock

type OrderViewQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrdersByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserFirstPageParams) ([]sqlc.ListOrdersByUserFirstPageRow, error)
	ListOrdersByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserKeysetParams) ([]sqlc.ListOrdersByUserKeysetRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.OrderView{
		ID:                row.ID,
		OrderNumber:       row.OrderNumber,
		UserID:            row.UserID,
		IdempotencyKey:    row.IdempotencyKey,
		Status:            row.Status,
		PaymentStatus:     row.PaymentStatus,
		PaymentIntentID:   pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		PaymentRetryCount: row.PaymentRetryCount,
		SubtotalCents:     row.SubtotalCents,
		ShippingCents:     row.ShippingCents,
		TaxCents:          row.TaxCents,
		DiscountCents:     row.DiscountCents,
		TotalCents:        row.TotalCents,
		RefundCents:       row.RefundCents,
		Refunded:          row.Refunded,
		CouponCode:        pgconv.StringPtrFromPgtype(row.CouponCode),
		Currency:          row.Currency,
		BuyerEmail:        row.BuyerEmail,
		BuyerType:         row.BuyerType,
		ShippingFullName:  row.ShippingFullName,
		ShippingCity:      row.ShippingCity,
		ShippingCountry:   row.ShippingCountry,
		TrackingNumber:    pgconv.StringPtrFromPgtype(row.TrackingNumber),
		InvoiceURL:        pgconv.StringPtrFromPgtype(row.InvoiceUrl),
		Items:             make([]queries.OrderItemView, len(items)),
		PaidAt:            pgconv.TimePtrFromPgtype(row.PaidAt),
		ShippedAt:         pgconv.TimePtrFromPgtype(row.ShippedAt),
		DeliveredAt:       pgconv.TimePtrFromPgtype(row.DeliveredAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for i, it := range items {
		view.Items[i] = queries.OrderItemView{
			ProductID:      it.ProductID,
			VariantID:      pgconv.UUIDPtrFromPgtype(it.VariantID),
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
			TaxCents:       it.TaxCents,
		}
	}
	return view, nil
}

func (r *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUserFirstPage(ctx, r.db, sqlc.ListOrdersByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}

	items := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.OrderListItem{
			ID:            row.ID,
			OrderNumber:   row.OrderNumber,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			TotalCents:    row.TotalCents,
			Currency:      row.Currency,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUserKeyset(ctx, r.db, sqlc.ListOrdersByUserKeysetParams{
		UserID:        userID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user keyset", err)
	}

	items := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.OrderListItem{
			ID:            row.ID,
			OrderNumber:   row.OrderNumber,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			TotalCents:    row.TotalCents,
			Currency:      row.Currency,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}
