package repository

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository/converter"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/repository/coupon_queries.go -package=repositorymock

type CouponWriteQueries interface {
	LockCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	LockCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DecrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	CouponRedemptionExists(ctx context.Context, db sqlc.DBTX, arg sqlc.CouponRedemptionExistsParams) (bool, error)
	CreateCouponRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponRedemptionParams) (uuid.UUID, error)
	FinalizeCouponRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.FinalizeCouponRedemptionParams) error
	DeleteCouponRedemptionByOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCouponRedemptionByOrderParams) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) LockByCode(ctx context.Context, tx sqlc.DBTX, code string) (*coupon.Coupon, error) {
	row, err := r.queries.LockCouponByCode(ctx, tx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon by code", err)
	}
	return toCoupon(row)
}

func (r *CouponRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.LockCouponByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon by id", err)
	}
	return toCoupon(row)
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.IncrementCouponUsage(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return n == 1, nil
}

func (r *CouponRepository) DecrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DecrementCouponUsage(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to decrement coupon usage", err)
	}
	return nil
}

func (r *CouponRepository) HasRedemption(ctx context.Context, tx sqlc.DBTX, couponID, userID uuid.UUID) (bool, error) {
	exists, err := r.queries.CouponRedemptionExists(ctx, tx, sqlc.CouponRedemptionExistsParams{
		CouponID: couponID,
		UserID:   userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon redemption", err)
	}
	return exists, nil
}

// CreateRedemption returns a DUPLICATE_KEY error when a single-use coupon
// was already redeemed by the user.
func (r *CouponRepository) CreateRedemption(ctx context.Context, tx sqlc.DBTX, couponID, userID uuid.UUID, orderID *uuid.UUID, singleUse bool) (uuid.UUID, error) {
	id, err := r.queries.CreateCouponRedemption(ctx, tx, sqlc.CreateCouponRedemptionParams{
		CouponID:  couponID,
		UserID:    userID,
		OrderID:   pgconv.UUIDPtrToPgtype(orderID),
		SingleUse: singleUse,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon redemption", err)
	}
	return id, nil
}

func (r *CouponRepository) FinalizeRedemption(ctx context.Context, tx sqlc.DBTX, redemptionID, orderID uuid.UUID) error {
	err := r.queries.FinalizeCouponRedemption(ctx, tx, sqlc.FinalizeCouponRedemptionParams{
		ID:      redemptionID,
		OrderID: pgconv.UUIDToPgtype(orderID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to finalize coupon redemption", err)
	}
	return nil
}

func (r *CouponRepository) DeleteRedemption(ctx context.Context, tx sqlc.DBTX, couponID, orderID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteCouponRedemptionByOrder(ctx, tx, sqlc.DeleteCouponRedemptionByOrderParams{
		CouponID: couponID,
		OrderID:  pgconv.UUIDToPgtype(orderID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete coupon redemption", err)
	}
	return n, nil
}

func toCoupon(row sqlc.Coupons) (*coupon.Coupon, error) {
	c, err := converter.CouponToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}
