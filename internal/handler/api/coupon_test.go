//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/api"
	resdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/response"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/httptest"
	commandsmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCouponHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *commandsmock.MockCouponCommands) {
		ctrl := gomock.NewController(t)
		mockCoupons := commandsmock.NewMockCouponCommands(ctrl)
		router := gin.New()
		router.POST("/coupons/preview", api.NewCouponHandler(mockCoupons).Preview)
		return router, mockCoupons
	}

	t.Run("success: valid coupon", func(t *testing.T) {
		router, mockCoupons := setup(t)
		mockCoupons.EXPECT().Preview(gomock.Any(), "SAVE10", int64(15389)).
			Return(coupon.Evaluation{Valid: true, Message: "Coupon applied", DiscountCents: 1539}, nil)

		rec := httptest.Do(t, router, httptest.Request{
			Method: http.MethodPost,
			Path:   "/coupons/preview",
			Body:   map[string]any{"code": "SAVE10", "amount_cents": 15389},
		})

		var body resdto.CouponPreviewResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Valid)
		assert.Equal(t, int64(1539), body.DiscountCents)
	})

	t.Run("success: rejection is reported in the body", func(t *testing.T) {
		router, mockCoupons := setup(t)
		mockCoupons.EXPECT().Preview(gomock.Any(), "OLD", int64(100)).
			Return(coupon.Evaluation{Valid: false, Message: "Coupon has expired"}, nil)

		rec := httptest.Do(t, router, httptest.Request{
			Method: http.MethodPost,
			Path:   "/coupons/preview",
			Body:   map[string]any{"code": "OLD", "amount_cents": 100},
		})

		var body resdto.CouponPreviewResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.False(t, body.Valid)
		assert.Equal(t, "Coupon has expired", body.Message)
	})

	t.Run("error: validation", func(t *testing.T) {
		cases := map[string]map[string]any{
			"missing code":    {"amount_cents": 100},
			"zero amount":     {"code": "SAVE10", "amount_cents": 0},
			"negative amount": {"code": "SAVE10", "amount_cents": -5},
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				router, _ := setup(t)
				rec := httptest.Do(t, router, httptest.Request{Method: http.MethodPost, Path: "/coupons/preview", Body: body})
				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "")
			})
		}
	})

	t.Run("error: blank code after normalisation", func(t *testing.T) {
		router, mockCoupons := setup(t)
		mockCoupons.EXPECT().Preview(gomock.Any(), "  ", int64(100)).Return(coupon.Evaluation{}, commands.ErrInvalidRequest)

		rec := httptest.Do(t, router, httptest.Request{
			Method: http.MethodPost,
			Path:   "/coupons/preview",
			Body:   map[string]any{"code": "  ", "amount_cents": 100},
		})
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})
}
