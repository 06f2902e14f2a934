package api

import (
	"net/http"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/httperr"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("no authenticated user in context")

type errorMapping struct {
	err    error
	status int
	msg    string
}

// Sentinels are distinct, so the first match is the only match.
var errorMappings = []errorMapping{
	{commands.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header is required"},
	{commands.ErrUnsupportedRegion, http.StatusBadRequest, "Region is not supported"},
	{commands.ErrInvalidBuyer, http.StatusBadRequest, "Invalid buyer details"},
	{commands.ErrEmptyCart, http.StatusBadRequest, "Cart is empty"},
	{commands.ErrShippingUnavailable, http.StatusBadRequest, "No shipping rate for this cart"},
	{commands.ErrInvalidRefundAmount, http.StatusBadRequest, "Refund amount must be positive"},
	{commands.ErrCouponRejected, http.StatusBadRequest, "Coupon cannot be applied"},
	{commands.ErrCheckoutInProgress, http.StatusConflict, "Checkout is already in progress"},
	{commands.ErrInsufficientStock, http.StatusConflict, "Could not create order"},
	{commands.ErrPaymentPermanentlyFailed, http.StatusConflict, "Payment permanently failed for this order"},
	{commands.ErrOrderNotPayable, http.StatusConflict, "Order cannot take a new payment"},
	{commands.ErrRefundRejected, http.StatusConflict, "Order cannot be refunded"},
	{commands.ErrCouponAlreadyUsed, http.StatusConflict, "Coupon already used"},
	{commands.ErrOrderNotEditable, http.StatusConflict, "Order can no longer be modified"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Invalid fulfillment transition"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{commands.ErrCouponNotFound, http.StatusNotFound, "Coupon not found"},
	{commands.ErrOrderAccess, http.StatusForbidden, "Access denied"},
	{queries.ErrOrderAccess, http.StatusForbidden, "Access denied"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{commands.ErrPaymentProvider, http.StatusBadGateway, "Payment provider unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.err) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
