package commands

import (
	"context"
	"log/slog"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon.go -package=commandsmock

// IntentRefreshRequired is set when the order already has a provider intent;
// that intent keeps the old amount until CreatePaymentIntent runs again.
type CouponApplication struct {
	OrderID               uuid.UUID
	Code                  string
	DiscountCents         int64
	TotalCents            int64
	IntentRefreshRequired bool
}

type CouponCommands interface {
	ApplyCoupon(ctx context.Context, orderID, requesterID uuid.UUID, code string) (*CouponApplication, error)
	UnapplyCoupon(ctx context.Context, orderID, requesterID uuid.UUID, code string) (*CouponApplication, error)
	// Preview evaluates a code against an amount without binding anything.
	Preview(ctx context.Context, code string, orderAmount int64) (coupon.Evaluation, error)
}

type couponUseCaseImpl struct {
	uow       shared.UnitOfWork
	cache     shared.Cache
	evaluator coupon.Evaluator
	clock     clock.Clock
}

func NewCouponUseCase(uow shared.UnitOfWork, cache shared.Cache, clk clock.Clock) CouponCommands {
	return &couponUseCaseImpl{
		uow:       uow,
		cache:     cache,
		evaluator: coupon.NewEvaluator(),
		clock:     clk,
	}
}

func (uc *couponUseCaseImpl) ApplyCoupon(ctx context.Context, orderID, requesterID uuid.UUID, rawCode string) (*CouponApplication, error) {
	code := coupon.NormalizeCode(rawCode)
	if code == "" {
		return nil, ErrInvalidRequest
	}

	var result *CouponApplication
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := lockOwnedOrder(ctx, tx, orderID, requesterID)
		if err != nil {
			return err
		}

		c, err := tx.Coupons().LockByCode(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return err
		}

		now := uc.clock.Now()
		eval := uc.evaluator.Evaluate(c, o.OrderAmount(), now)
		if !eval.Valid {
			return errs.Mark(errs.New(eval.Message), ErrCouponRejected)
		}
		if c.SingleUsePerUser() {
			used, err := tx.Coupons().HasRedemption(ctx, tx.DB(), c.ID(), requesterID)
			if err != nil {
				return err
			}
			if used {
				return ErrCouponAlreadyUsed
			}
		}

		if err := o.ApplyCoupon(c.ID(), c.Code().String(), eval.DiscountCents, now); err != nil {
			return errs.Mark(err, ErrOrderNotEditable)
		}
		ok, err := tx.Coupons().IncrementUsage(ctx, tx.DB(), c.ID())
		if err != nil {
			return err
		}
		if !ok {
			return errs.Mark(errs.New(coupon.MsgUsageLimit), ErrCouponRejected)
		}
		oid := o.ID()
		if _, err := tx.Coupons().CreateRedemption(ctx, tx.DB(), c.ID(), requesterID, &oid, c.SingleUsePerUser()); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		stale, err := syncSessionTotal(ctx, tx, o)
		if err != nil {
			return err
		}

		result = &CouponApplication{
			OrderID:               o.ID(),
			Code:                  c.Code().String(),
			DiscountCents:         eval.DiscountCents,
			TotalCents:            o.TotalCents(),
			IntentRefreshRequired: stale,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "coupon applied",
		slog.String("order_id", orderID.String()),
		slog.String("code", code),
		slog.Int64("discount_cents", result.DiscountCents))
	invalidateOrder(ctx, uc.cache, orderID)
	return result, nil
}

func (uc *couponUseCaseImpl) UnapplyCoupon(ctx context.Context, orderID, requesterID uuid.UUID, rawCode string) (*CouponApplication, error) {
	code := coupon.NormalizeCode(rawCode)

	var result *CouponApplication
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := lockOwnedOrder(ctx, tx, orderID, requesterID)
		if err != nil {
			return err
		}

		couponID, err := o.RemoveCoupon(code, uc.clock.Now())
		if err != nil {
			if errs.Is(err, order.ErrCouponNotApplied) {
				return errs.Mark(err, ErrCouponNotFound)
			}
			return errs.Mark(err, ErrOrderNotEditable)
		}

		if _, err := tx.Coupons().LockByID(ctx, tx.DB(), couponID); err != nil {
			return err
		}
		if err := tx.Coupons().DecrementUsage(ctx, tx.DB(), couponID); err != nil {
			return err
		}
		if _, err := tx.Coupons().DeleteRedemption(ctx, tx.DB(), couponID, o.ID()); err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		stale, err := syncSessionTotal(ctx, tx, o)
		if err != nil {
			return err
		}

		result = &CouponApplication{
			OrderID:               o.ID(),
			Code:                  code,
			TotalCents:            o.TotalCents(),
			IntentRefreshRequired: stale,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateOrder(ctx, uc.cache, orderID)
	return result, nil
}

// syncSessionTotal moves the checkout session total to the order's new total
// and reports whether a provider intent now carries a stale amount.
func syncSessionTotal(ctx context.Context, tx shared.Tx, o *order.Order) (bool, error) {
	intentID := o.PaymentIntentID()
	if intentID == nil {
		return false, nil
	}
	if err := tx.CheckoutSessions().SetPaymentIntent(ctx, tx.DB(), o.ID(), *intentID, o.TotalCents()); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *couponUseCaseImpl) Preview(ctx context.Context, rawCode string, orderAmount int64) (coupon.Evaluation, error) {
	code := coupon.NormalizeCode(rawCode)
	if code == "" {
		return coupon.Evaluation{}, ErrInvalidRequest
	}

	c, err := uc.uow.CommandReads().CouponByCode(ctx, code)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return coupon.Evaluation{}, err
		}
		c = nil
	}
	return uc.evaluator.Evaluate(c, orderAmount, uc.clock.Now()), nil
}

func lockOwnedOrder(ctx context.Context, tx shared.Tx, orderID, requesterID uuid.UUID) (*order.Order, error) {
	o, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(requesterID) {
		return nil, ErrOrderAccess
	}
	return o, nil
}
