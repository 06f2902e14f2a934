package coupon

import (
	"fmt"
	"time"
)

// Rejection messages, one per check so callers can tell the user exactly
// which rule failed.
const (
	MsgNotFound     = "coupon not found"
	MsgInactive     = "coupon is not active"
	MsgNotStarted   = "coupon is not yet valid"
	MsgExpired      = "coupon has expired"
	MsgUsageLimit   = "coupon usage limit reached"
	MsgApplied      = "coupon applied"
	msgMinOrderTmpl = "order amount must be at least %d cents to use this coupon"
)

type Evaluation struct {
	Valid         bool
	Message       string
	DiscountCents int64
}

// Evaluator is shared by the preview endpoint and checkout so both quote the
// same discount.
type Evaluator struct{}

func NewEvaluator() Evaluator {
	return Evaluator{}
}

func (Evaluator) Evaluate(c *Coupon, orderAmount int64, now time.Time) Evaluation {
	switch {
	case c == nil:
		return reject(MsgNotFound)
	case !c.isActive:
		return reject(MsgInactive)
	case !c.HasStarted(now):
		return reject(MsgNotStarted)
	case c.HasExpired(now):
		return reject(MsgExpired)
	case c.UsageExhausted():
		return reject(MsgUsageLimit)
	case orderAmount < c.minOrderCents:
		return reject(fmt.Sprintf(msgMinOrderTmpl, c.minOrderCents))
	}

	return Evaluation{
		Valid:         true,
		Message:       MsgApplied,
		DiscountCents: c.discount.Amount(orderAmount),
	}
}

func reject(msg string) Evaluation {
	return Evaluation{Valid: false, Message: msg}
}
