package commands

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
)

// Each sentinel is a distinct leaf. Call sites attach one with errs.Mark so
// the cause is kept and errs.Is matches only that sentinel.
var (
	ErrIdempotencyKeyRequired = errs.New("idempotency key is required")
	ErrUnsupportedRegion      = errs.New("region is not supported")
	ErrInvalidBuyer           = errs.New("invalid buyer details")
	ErrInvalidRequest         = errs.New("invalid request")
	ErrEmptyCart              = errs.New("cart is empty")
	ErrShippingUnavailable    = errs.New("no shipping rate for this cart")
	ErrCheckoutInProgress     = errs.New("checkout with this idempotency key is in progress")
	ErrInsufficientStock      = errs.New("could not create order")

	ErrOrderNotFound            = errs.New("order not found")
	ErrOrderAccess              = errs.New("order access denied")
	ErrPaymentPermanentlyFailed = errs.New("payment permanently failed for this order")
	ErrOrderNotPayable          = errs.New("order cannot take a new payment")
	ErrRefundRejected           = errs.New("order cannot be refunded")
	ErrInvalidRefundAmount      = errs.New("refund amount must be positive")
	ErrPaymentProvider          = errs.New("payment provider failure")

	ErrCouponNotFound    = errs.New("coupon not found")
	ErrCouponRejected    = errs.New("coupon cannot be applied")
	ErrCouponAlreadyUsed = errs.New("coupon already used by this user")
	ErrOrderNotEditable  = errs.New("order can no longer be modified")

	ErrInvalidTransition = errs.New("invalid fulfillment transition")
)
