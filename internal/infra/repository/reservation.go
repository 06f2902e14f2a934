package repository

import (
	"context"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository/converter"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_queries.go -package=repositorymock

type ReservationWriteQueries interface {
	SumActiveReservedQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumActiveReservedQuantityParams) (int64, error)
	CreateStockReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStockReservationParams) error
	AttachReservationsToOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachReservationsToOrderParams) error
	MarkReservationsCommitted(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
	ReleaseReservations(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
	ListExpiredReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredReservationsParams) ([]sqlc.StockReservations, error)
	ListReservationsByOrder(ctx context.Context, db sqlc.DBTX, orderID pgtype.UUID) ([]sqlc.StockReservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) ActiveReservedQuantity(ctx context.Context, tx sqlc.DBTX, sku reservation.SKU, now time.Time) (int, error) {
	sum, err := r.queries.SumActiveReservedQuantity(ctx, tx, sqlc.SumActiveReservedQuantityParams{
		ProductID: sku.ProductID,
		VariantID: pgconv.UUIDPtrToPgtype(sku.VariantID),
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum active reservations", err)
	}
	return int(sum), nil
}

func (r *ReservationRepository) CreateBatch(ctx context.Context, tx sqlc.DBTX, rs []*reservation.StockReservation) error {
	for _, res := range rs {
		if err := r.queries.CreateStockReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
			return infra.WrapRepoErr("failed to create stock reservation", err)
		}
	}
	return nil
}

func (r *ReservationRepository) AttachOrder(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, orderID uuid.UUID) error {
	err := r.queries.AttachReservationsToOrder(ctx, tx, sqlc.AttachReservationsToOrderParams{
		OrderID: pgconv.UUIDToPgtype(orderID),
		Ids:     ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach reservations to order", err)
	}
	return nil
}

func (r *ReservationRepository) MarkCommitted(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkReservationsCommitted(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to commit reservations", err)
	}
	return n, nil
}

// Release only touches rows still in the reserved state, so a second
// release of the same ids affects nothing.
func (r *ReservationRepository) Release(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.ReleaseReservations(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) ListExpired(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*reservation.StockReservation, error) {
	rows, err := r.queries.ListExpiredReservations(ctx, tx, sqlc.ListExpiredReservationsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired reservations", err)
	}
	return toReservations(rows), nil
}

func (r *ReservationRepository) ListByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]*reservation.StockReservation, error) {
	rows, err := r.queries.ListReservationsByOrder(ctx, tx, pgconv.UUIDToPgtype(orderID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order reservations", err)
	}
	return toReservations(rows), nil
}

func toReservations(rows []sqlc.StockReservations) []*reservation.StockReservation {
	out := make([]*reservation.StockReservation, len(rows))
	for i, row := range rows {
		out[i] = converter.ReservationToDomain(row)
	}
	return out
}
