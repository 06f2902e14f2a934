package api

import (
	"net/http"

	reqdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/request"
	resdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/response"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	coupons commands.CouponCommands
}

func NewCouponHandler(coupons commands.CouponCommands) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// @Summary Preview coupon
// @Description Evaluates a code against an amount without reserving it. Rejections come back as valid=false with a reason.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewCouponRequest true "Code and amount"
// @Success 200 {object} resdto.CouponPreviewResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons/preview [post]
func (h *CouponHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	eval, err := h.coupons.Preview(c.Request.Context(), req.Code, req.AmountCents)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvaluation(eval))
}
