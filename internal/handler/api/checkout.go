package api

import (
	"net/http"
	"strings"

	reqdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/request"
	resdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/response"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/middleware"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/cookie"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader    = "Idempotency-Key"
	IdempotentReplayHeader  = "Idempotent-Replayed"
	maxIdempotencyKeyLength = 255
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
	orders   queries.OrderQueries
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, orders queries.OrderQueries) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, orders: orders}
}

// @Summary Checkout
// @Description Convert the caller's cart into an order. Replays with the same Idempotency-Key return the original order.
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param X-Cart-Session header string false "Guest cart session"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	actor := commands.Actor{SessionID: cookie.GetCartSession(c)}
	if userID, ok := middleware.GetUserID(c); ok {
		actor.UserID = &userID
	}

	ctx := c.Request.Context()
	res, err := h.checkout.Checkout(ctx, actor, req.ToCommand(key))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.orders.GetByIDSystem(ctx, res.OrderID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromOrderView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+res.OrderID.String())
	if res.IsReplayed {
		c.Header(IdempotentReplayHeader, "true")
		c.JSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusCreated, body)
}

func idempotencyKey(c *gin.Context) (string, bool) {
	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	if key == "" {
		abortWithUseCaseError(c, commands.ErrIdempotencyKeyRequired)
		return "", false
	}
	if len(key) > maxIdempotencyKeyLength {
		abortWithUseCaseError(c, commands.ErrIdempotencyKeyRequired)
		return "", false
	}
	return key, true
}
