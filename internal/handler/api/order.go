package api

import (
	"net/http"
	"strings"

	reqdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/request"
	resdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/response"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/httperr"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/middleware"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultOrderPageSize = 20

type OrderHandler struct {
	orders      queries.OrderQueries
	payments    commands.PaymentCommands
	coupons     commands.CouponCommands
	fulfillment commands.FulfillmentCommands
}

func NewOrderHandler(
	orders queries.OrderQueries,
	payments commands.PaymentCommands,
	coupons commands.CouponCommands,
	fulfillment commands.FulfillmentCommands,
) *OrderHandler {
	return &OrderHandler{
		orders:      orders,
		payments:    payments,
		coupons:     coupons,
		fulfillment: fulfillment,
	}
}

// @Summary Get order
// @Description Owners and staff read any order; guests pass the Idempotency-Key used at checkout.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param Idempotency-Key header string false "Checkout idempotency key (guests)"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	viewer := queries.Viewer{IdempotencyKey: strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))}
	if userID, ok := middleware.GetUserID(c); ok {
		viewer.UserID = &userID
	}
	if role, ok := middleware.GetUserRole(c); ok {
		viewer.Role = role.String()
	}

	view, err := h.orders.GetByID(c.Request.Context(), id, viewer)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromOrderView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var q reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultOrderPageSize
	}
	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}

	items, next, err := h.orders.ListMine(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromOrderList(items, next)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Create or refresh payment intent
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param Idempotency-Key header string false "Checkout idempotency key (guests)"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /orders/{id}/payment-intent [post]
func (h *OrderHandler) CreatePaymentIntent(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var requester *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		requester = &userID
	}

	intent, err := h.payments.CreatePaymentIntent(c.Request.Context(), id, requester, strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentIntent(intent))
}

// @Summary Apply coupon to order
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ApplyCouponRequest true "Coupon"
// @Success 200 {object} resdto.CouponApplicationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/coupon [post]
func (h *OrderHandler) ApplyCoupon(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.coupons.ApplyCoupon(c.Request.Context(), id, userID, req.Code)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponApplication(res))
}

// @Summary Remove coupon from order
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponApplicationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/coupon/{code} [delete]
func (h *OrderHandler) RemoveCoupon(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	res, err := h.coupons.UnapplyCoupon(c.Request.Context(), id, userID, c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponApplication(res))
}

// @Summary Refund order
// @Description Refunds the given amount, or the remaining total when omitted.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.RefundRequest false "Refund"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/refund [post]
func (h *OrderHandler) Refund(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req reqdto.RefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err, "Invalid request format")
			return
		}
	}

	full, err := h.payments.RefundPayment(c.Request.Context(), id, req.AmountCents)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RefundResponse{OrderID: id, FullyRefunded: full})
}

// @Summary Update fulfillment
// @Tags orders
// @Accept json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.FulfillmentRequest true "Fulfillment step"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/fulfillment [patch]
func (h *OrderHandler) UpdateFulfillment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req reqdto.FulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.fulfillment.UpdateFulfillment(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid order ID format")
		return uuid.Nil, false
	}
	return id, true
}

// requireUserID guards handlers mounted behind RequireAuth.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Authentication required", nil)
		return uuid.Nil, false
	}
	return userID, true
}
