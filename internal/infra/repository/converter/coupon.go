package converter

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
)

func CouponToDomain(row sqlc.Coupons) (*coupon.Coupon, error) {
	percentOff, err := pgconv.Float64PtrFromNumeric(row.PercentOff)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(pgconv.Int64PtrFromPgtype(row.AmountOffCents), percentOff)
	if err != nil {
		return nil, err
	}

	var usageLimit *int
	if row.UsageLimit.Valid {
		limit := int(row.UsageLimit.Int32)
		usageLimit = &limit
	}

	return coupon.ReconstructCoupon(
		row.ID,
		row.Code,
		discount,
		row.MinOrderCents,
		usageLimit,
		int(row.UsageCount),
		row.IsActive,
		row.SingleUsePerUser,
		pgconv.TimePtrFromPgtype(row.ValidFrom),
		pgconv.TimePtrFromPgtype(row.ValidTo),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
