package readstore

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository/converter"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
)

type CouponReadQueries interface {
	FindCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

// CouponReadStore serves lock-free lookups for previews. Binding paths
// lock the row through the coupon repository instead.
type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row, err := r.queries.FindCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	c, err := converter.CouponToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}
