//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/ptr"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestEvaluator_Evaluate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	ev := coupon.NewEvaluator()

	testCases := []struct {
		name        string
		build       func() *coupon.Coupon
		orderAmount int64
		valid       bool
		message     string
		discount    int64
	}{
		{
			name:        "missing coupon",
			build:       func() *coupon.Coupon { return nil },
			orderAmount: 15389,
			message:     coupon.MsgNotFound,
		},
		{
			name: "inactive coupon",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.IsActive = false }).BuildDomain()
			},
			orderAmount: 15389,
			message:     coupon.MsgInactive,
		},
		{
			name: "inactive takes precedence over expiry",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().
					With(func(b *builder.CouponBuilder) { b.IsActive = false }).
					WithWindow(nil, &yesterday).
					BuildDomain()
			},
			orderAmount: 15389,
			message:     coupon.MsgInactive,
		},
		{
			name: "not yet started",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithWindow(&tomorrow, nil).BuildDomain()
			},
			orderAmount: 15389,
			message:     coupon.MsgNotStarted,
		},
		{
			name: "expired",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithWindow(nil, &yesterday).BuildDomain()
			},
			orderAmount: 15389,
			message:     coupon.MsgExpired,
		},
		{
			name: "usage cap reached",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithUsage(5, ptr.To(5)).BuildDomain()
			},
			orderAmount: 15389,
			message:     coupon.MsgUsageLimit,
		},
		{
			name: "usage cap checked before minimum order",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithUsage(1, ptr.To(1)).BuildDomain()
			},
			orderAmount: 10,
			message:     coupon.MsgUsageLimit,
		},
		{
			name:        "below minimum order",
			build:       func() *coupon.Coupon { return builder.NewCouponBuilder().BuildDomain() },
			orderAmount: 9999,
			message:     "order amount must be at least 10000 cents to use this coupon",
		},
		{
			name:        "ten percent of order amount",
			build:       func() *coupon.Coupon { return builder.NewCouponBuilder().BuildDomain() },
			orderAmount: 15389,
			valid:       true,
			message:     coupon.MsgApplied,
			discount:    1539,
		},
		{
			name: "window boundaries are inclusive",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithWindow(&now, &now).BuildDomain()
			},
			orderAmount: 20000,
			valid:       true,
			message:     coupon.MsgApplied,
			discount:    2000,
		},
		{
			name: "fixed amount",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithFixed(2500).BuildDomain()
			},
			orderAmount: 15389,
			valid:       true,
			message:     coupon.MsgApplied,
			discount:    2500,
		},
		{
			name: "fixed amount clamped to order amount",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().
					WithFixed(1_000_000).
					With(func(b *builder.CouponBuilder) { b.MinOrderCents = 0 }).
					BuildDomain()
			},
			orderAmount: 15389,
			valid:       true,
			message:     coupon.MsgApplied,
			discount:    15389,
		},
		{
			name: "percent above one hundred clamped",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithPercent(250).BuildDomain()
			},
			orderAmount: 15389,
			valid:       true,
			message:     coupon.MsgApplied,
			discount:    15389,
		},
		{
			name: "usage below cap",
			build: func() *coupon.Coupon {
				return builder.NewCouponBuilder().WithUsage(4, ptr.To(5)).BuildDomain()
			},
			orderAmount: 10000,
			valid:       true,
			message:     coupon.MsgApplied,
			discount:    1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ev.Evaluate(tc.build(), tc.orderAmount, now)

			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.message, got.Message)
			assert.Equal(t, tc.discount, got.DiscountCents)
		})
	}
}

func TestDiscount_AmountIsAlwaysClamped(t *testing.T) {
	discounts := []func() (coupon.Discount, error){
		func() (coupon.Discount, error) { return coupon.NewFixedDiscount(0) },
		func() (coupon.Discount, error) { return coupon.NewFixedDiscount(1) },
		func() (coupon.Discount, error) { return coupon.NewFixedDiscount(99_999_999) },
		func() (coupon.Discount, error) { return coupon.NewPercentageDiscount(0) },
		func() (coupon.Discount, error) { return coupon.NewPercentageDiscount(33.33) },
		func() (coupon.Discount, error) { return coupon.NewPercentageDiscount(100) },
		func() (coupon.Discount, error) { return coupon.NewPercentageDiscount(1000) },
	}
	amounts := []int64{-500, 0, 1, 99, 15389, 1_000_000}

	for _, mk := range discounts {
		d, err := mk()
		assert.NoError(t, err)
		for _, amount := range amounts {
			got := d.Amount(amount)
			assert.GreaterOrEqual(t, got, int64(0))
			if amount >= 0 {
				assert.LessOrEqual(t, got, amount)
			} else {
				assert.Equal(t, int64(0), got)
			}
		}
	}
}

func TestNewDiscount(t *testing.T) {
	_, err := coupon.NewDiscount(ptr.To(int64(100)), ptr.To(5.0))
	assert.ErrorIs(t, err, coupon.ErrAmbiguousDiscount)

	_, err = coupon.NewDiscount(nil, nil)
	assert.ErrorIs(t, err, coupon.ErrMissingDiscount)

	_, err = coupon.NewDiscount(ptr.To(int64(-1)), nil)
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)

	_, err = coupon.NewDiscount(nil, ptr.To(-0.5))
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
}
