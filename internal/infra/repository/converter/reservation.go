package converter

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.StockReservation) sqlc.CreateStockReservationParams {
	return sqlc.CreateStockReservationParams{
		ID:             res.ID(),
		ProductID:      res.ProductID(),
		VariantID:      pgconv.UUIDPtrToPgtype(res.VariantID()),
		UserID:         res.UserID(),
		IdempotencyKey: res.IdempotencyKey(),
		Quantity:       int32(res.Quantity()), // #nosec G115 -- cart quantities are small
		Status:         res.Status().String(),
		ExpiresAt:      pgconv.TimeToPgtype(res.ExpiresAt()),
		CreatedAt:      pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToDomain(row sqlc.StockReservations) *reservation.StockReservation {
	return reservation.ReconstructStockReservation(
		row.ID,
		reservation.NewSKU(row.ProductID, pgconv.UUIDPtrFromPgtype(row.VariantID)),
		row.UserID,
		pgconv.UUIDPtrFromPgtype(row.OrderID),
		row.IdempotencyKey,
		int(row.Quantity),
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
