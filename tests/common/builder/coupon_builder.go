//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/ptr"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID               uuid.UUID
	Code             string
	AmountOffCents   *int64
	PercentOff       *float64
	MinOrderCents    int64
	UsageLimit       *int
	UsageCount       int
	IsActive         bool
	SingleUsePerUser bool
	ValidFrom        *time.Time
	ValidTo          *time.Time
}

// NewCouponBuilder defaults to an active 10% coupon with a 100.00 minimum.
func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:            uuid.New(),
		Code:          "SAVE10",
		PercentOff:    ptr.To(10.0),
		MinOrderCents: 10000,
		IsActive:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithFixed(cents int64) *CouponBuilder {
	b.AmountOffCents = ptr.To(cents)
	b.PercentOff = nil
	return b
}

func (b *CouponBuilder) WithPercent(p float64) *CouponBuilder {
	b.PercentOff = ptr.To(p)
	b.AmountOffCents = nil
	return b
}

func (b *CouponBuilder) WithWindow(from, to *time.Time) *CouponBuilder {
	b.ValidFrom = from
	b.ValidTo = to
	return b
}

func (b *CouponBuilder) WithUsage(count int, limit *int) *CouponBuilder {
	b.UsageCount = count
	b.UsageLimit = limit
	return b
}

func (b *CouponBuilder) BuildDomain() *domcoupon.Coupon {
	discount, err := domcoupon.NewDiscount(b.AmountOffCents, b.PercentOff)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return domcoupon.ReconstructCoupon(
		b.ID, b.Code, discount, b.MinOrderCents,
		b.UsageLimit, b.UsageCount, b.IsActive, b.SingleUsePerUser,
		b.ValidFrom, b.ValidTo, now, now,
	)
}
