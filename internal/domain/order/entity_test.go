//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/ptr"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxRetries = 3

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func paidOrder() *order.Order {
	return builder.NewOrderBuilder().BuildInState(func(s *order.Snapshot) {
		s.PaymentStatus = order.PaymentSucceeded
		s.Status = order.StatusProcessing
		s.PaymentIntentID = ptr.To("pi_123")
		s.PaymentProvider = ptr.To("stripe")
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("total follows amounts", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.True(t, strings.HasPrefix(o.Number(), "ORD-"))
		assert.Len(t, o.Number(), len("ORD-")+26)
		assert.Equal(t, int64(15389), o.TotalCents())
		assert.Equal(t, int64(15389), o.OrderAmount())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.NotEqual(t, uuid.Nil, o.Items()[0].ID)
	})

	t.Run("total is clamped at zero", func(t *testing.T) {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Amounts.DiscountCents = 1_000_000
		}).BuildDomain()

		assert.Equal(t, int64(0), o.TotalCents())
	})

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := order.NewOrder(order.NewParams{UserID: uuid.New(), Now: now})
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("numbers are unique", func(t *testing.T) {
		assert.NotEqual(t, order.NewNumber(now, nil), order.NewNumber(now, nil))
	})
}

func TestOrder_CanBeAccessedBy(t *testing.T) {
	o := builder.NewOrderBuilder().BuildDomain()
	owner := o.UserID()
	stranger := uuid.New()

	assert.True(t, o.CanBeAccessedBy(&owner, ""))
	assert.True(t, o.CanBeAccessedBy(nil, "idem-key-1"))
	assert.True(t, o.CanBeAccessedBy(&stranger, "idem-key-1"))
	assert.False(t, o.CanBeAccessedBy(&stranger, ""))
	assert.False(t, o.CanBeAccessedBy(nil, "idem-key-2"))
	assert.False(t, o.CanBeAccessedBy(nil, ""))
}

func TestOrder_PaymentStateMachine(t *testing.T) {
	t.Run("three failures demote to failed_permanent", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()

		tr, err := o.ApplyPaymentStatus(order.PaymentFailed, maxRetries, now)
		require.NoError(t, err)
		assert.True(t, tr.Changed)
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
		assert.Equal(t, 1, o.PaymentRetryCount())
		assert.NoError(t, o.EnsurePayable())

		_, err = o.ApplyPaymentStatus(order.PaymentFailed, maxRetries, now)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())

		tr, err = o.ApplyPaymentStatus(order.PaymentFailed, maxRetries, now)
		require.NoError(t, err)
		assert.True(t, tr.BecamePermanent)
		assert.Equal(t, order.PaymentFailedPermanent, o.PaymentStatus())
		assert.Equal(t, 3, o.PaymentRetryCount())

		assert.ErrorIs(t, o.EnsurePayable(), order.ErrPaymentPermanentlyFailed)

		tr, err = o.ApplyPaymentStatus(order.PaymentFailed, maxRetries, now)
		require.NoError(t, err)
		assert.False(t, tr.Changed)
		assert.Equal(t, 3, o.PaymentRetryCount())
	})

	t.Run("success resets retries and advances order", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()
		_, _ = o.ApplyPaymentStatus(order.PaymentFailed, maxRetries, now)

		tr, err := o.ApplyPaymentStatus(order.PaymentSucceeded, maxRetries, now)
		require.NoError(t, err)
		assert.True(t, tr.BecameSucceeded)
		assert.Equal(t, 0, o.PaymentRetryCount())
		assert.Equal(t, order.StatusProcessing, o.Status())
		require.NotNil(t, o.PaidAt())

		tr, err = o.ApplyPaymentStatus(order.PaymentSucceeded, maxRetries, now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, tr.Changed)
		assert.Equal(t, now, *o.PaidAt())

		assert.ErrorIs(t, o.EnsurePayable(), order.ErrOrderAlreadyPaid)
	})

	t.Run("late failure after success is ignored", func(t *testing.T) {
		o := paidOrder()

		tr, err := o.ApplyPaymentStatus(order.PaymentFailed, maxRetries, now)
		require.NoError(t, err)
		assert.False(t, tr.Changed)
		assert.Equal(t, order.PaymentSucceeded, o.PaymentStatus())
	})

	t.Run("refund is terminal and cancels the order", func(t *testing.T) {
		o := paidOrder()

		tr, err := o.ApplyPaymentStatus(order.PaymentRefunded, maxRetries, now)
		require.NoError(t, err)
		assert.True(t, tr.BecameRefunded)
		assert.True(t, o.Refunded())
		assert.False(t, o.RefundRequested())
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, o.TotalCents(), o.RefundCents())

		for _, s := range []order.PaymentStatus{order.PaymentSucceeded, order.PaymentFailed, order.PaymentRefunded} {
			tr, err = o.ApplyPaymentStatus(s, maxRetries, now)
			require.NoError(t, err)
			assert.False(t, tr.Changed)
		}
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("intermediate statuses", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()

		tr, err := o.ApplyPaymentStatus(order.PaymentRequiresAction, maxRetries, now)
		require.NoError(t, err)
		assert.True(t, tr.Changed)
		assert.Equal(t, order.PaymentRequiresAction, o.PaymentStatus())

		tr, err = o.ApplyPaymentStatus(order.PaymentRequiresAction, maxRetries, now)
		require.NoError(t, err)
		assert.False(t, tr.Changed)

		_, err = o.ApplyPaymentStatus(order.PaymentStatus("bogus"), maxRetries, now)
		assert.ErrorIs(t, err, order.ErrInvalidPaymentStatus)
	})
}

func TestOrder_NextIntent(t *testing.T) {
	withIntent := func(status order.PaymentStatus) *order.Order {
		return builder.NewOrderBuilder().BuildInState(func(s *order.Snapshot) {
			s.PaymentStatus = status
			s.PaymentIntentID = ptr.To("pi_1")
		})
	}

	t.Run("no intent yet", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()

		existing, key := o.NextIntent()

		assert.Nil(t, existing)
		assert.Equal(t, "intent-"+o.ID().String(), key)
	})

	t.Run("live intent is updated", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{order.PaymentPending, order.PaymentFailed, order.PaymentRequiresAction} {
			o := withIntent(status)

			existing, key := o.NextIntent()

			require.NotNil(t, existing, status)
			assert.Equal(t, "pi_1", *existing)
			assert.Equal(t, "intent-"+o.ID().String(), key)
		}
	})

	t.Run("cancelled intent is replaced", func(t *testing.T) {
		o := withIntent(order.PaymentCancelled)

		existing, key := o.NextIntent()

		assert.Nil(t, existing)
		assert.Equal(t, "intent-"+o.ID().String()+"-after-pi_1", key)
		assert.NoError(t, o.EnsurePayable())
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("non-positive amount rejected", func(t *testing.T) {
		o := paidOrder()
		_, err := o.PlanRefund(ptr.To(int64(0)))
		assert.ErrorIs(t, err, order.ErrInvalidRefundAmount)
		_, err = o.PlanRefund(ptr.To(int64(-5)))
		assert.ErrorIs(t, err, order.ErrInvalidRefundAmount)
	})

	t.Run("unpaid order rejected", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()
		_, err := o.PlanRefund(nil)
		assert.ErrorIs(t, err, order.ErrOrderNotPaid)
	})

	t.Run("partial refunds accumulate and cap at total", func(t *testing.T) {
		o := paidOrder()

		plan, err := o.PlanRefund(ptr.To(int64(5000)))
		require.NoError(t, err)
		assert.Equal(t, order.RefundPlan{AmountCents: 5000, AccumulatedCents: 5000}, plan)
		o.RecordRefund(plan, now)
		assert.Equal(t, order.StatusProcessing, o.Status())
		assert.True(t, o.RefundRequested())

		plan, err = o.PlanRefund(ptr.To(int64(100000)))
		require.NoError(t, err)
		assert.Equal(t, int64(10389), plan.AmountCents)
		assert.Equal(t, int64(15389), plan.AccumulatedCents)
		assert.True(t, plan.Full)
		o.RecordRefund(plan, now)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, int64(15389), o.RefundCents())

		_, err = o.PlanRefund(nil)
		assert.ErrorIs(t, err, order.ErrAlreadyFullyRefunded)
	})

	t.Run("default is the full total", func(t *testing.T) {
		plan, err := paidOrder().PlanRefund(nil)
		require.NoError(t, err)
		assert.Equal(t, int64(15389), plan.AmountCents)
		assert.True(t, plan.Full)
	})
}

func TestOrder_Coupon(t *testing.T) {
	t.Run("apply and remove recompute total", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()
		couponID := uuid.New()

		require.NoError(t, o.ApplyCoupon(couponID, "SAVE10", 1539, now))
		assert.Equal(t, int64(13850), o.TotalCents())
		assert.ErrorIs(t, o.ApplyCoupon(uuid.New(), "OTHER", 1, now), order.ErrCouponAlreadyApplied)

		_, err := o.RemoveCoupon("OTHER", now)
		assert.ErrorIs(t, err, order.ErrCouponNotApplied)

		removed, err := o.RemoveCoupon("SAVE10", now)
		require.NoError(t, err)
		assert.Equal(t, couponID, removed)
		assert.Equal(t, int64(15389), o.TotalCents())
		assert.Nil(t, o.CouponID())
	})

	t.Run("paid order is not editable", func(t *testing.T) {
		err := paidOrder().ApplyCoupon(uuid.New(), "SAVE10", 100, now)
		assert.ErrorIs(t, err, order.ErrOrderNotEditable)
	})
}

func TestOrder_Fulfillment(t *testing.T) {
	o := builder.NewOrderBuilder().BuildDomain()
	assert.ErrorIs(t, o.MarkShipped("TRK1", now), order.ErrInvalidTransition)

	_, err := o.ApplyPaymentStatus(order.PaymentSucceeded, maxRetries, now)
	require.NoError(t, err)

	assert.ErrorIs(t, o.MarkShipped("", now), order.ErrTrackingRequired)
	assert.ErrorIs(t, o.MarkDelivered(now), order.ErrInvalidTransition)
	require.NoError(t, o.MarkShipped("TRK1", now))
	assert.Equal(t, "TRK1", *o.TrackingNumber())
	require.NoError(t, o.MarkDelivered(now.Add(48*time.Hour)))
	assert.Equal(t, order.StatusDelivered, o.Status())
}
