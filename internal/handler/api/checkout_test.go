//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/api"
	resdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/response"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/httptest"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/testutil"
	commandsmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/commands"
	queriesmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the auth middleware: a bearer token of the form
// "<role>" authenticates as userID with that role.
func fakeAuth(userID uuid.UUID, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
				return
			}
			c.Next()
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", user.Role(token))
		c.Next()
	}
}

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockOrders   *queriesmock.MockOrderQueries
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockOrders = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewCheckoutHandler(s.mockCheckout, s.mockOrders)
	s.router.POST("/checkout", fakeAuth(s.userID, false), h.Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) checkoutRequest(key, session, token string, body any) httptest.Request {
	headers := map[string]string{}
	if key != "" {
		headers[api.IdempotencyKeyHeader] = key
	}
	if session != "" {
		headers["X-Cart-Session"] = session
	}
	return httptest.Request{Method: http.MethodPost, Path: "/checkout", Body: body, AuthToken: token, Headers: headers}
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	b := builder.NewOrderBuilder()
	reqBody := b.BuildCheckoutRequestDTO()
	orderID := uuid.New()
	view := b.BuildView(orderID)

	s.Run("success: guest checkout returns 201 with the order", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), commands.Actor{SessionID: "sess-1"}, reqBody.ToCommand("key-1")).
			Return(&commands.CheckoutResult{OrderID: orderID}, nil).Times(1)
		s.mockOrders.EXPECT().GetByIDSystem(gomock.Any(), orderID).Return(view, nil).Times(1)

		rec := httptest.Do(s.T(), s.router, s.checkoutRequest("key-1", "sess-1", "", reqBody))

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(orderID, body.ID)
		s.Equal(int64(15389), body.TotalCents)
		s.Len(body.Items, 1)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/" + orderID.String()})
		s.Empty(rec.Header().Get(api.IdempotentReplayHeader))
	})

	s.Run("success: authenticated checkout passes the user id", func() {
		s.mockCheckout.EXPECT().
			Checkout(gomock.Any(), commands.Actor{UserID: &s.userID}, gomock.Any()).
			Return(&commands.CheckoutResult{OrderID: orderID}, nil).Times(1)
		s.mockOrders.EXPECT().GetByIDSystem(gomock.Any(), orderID).Return(view, nil).Times(1)

		rec := httptest.Do(s.T(), s.router, s.checkoutRequest("key-2", "", "customer", reqBody))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: replay returns 200 and marks the response", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{OrderID: orderID, IsReplayed: true}, nil).Times(1)
		s.mockOrders.EXPECT().GetByIDSystem(gomock.Any(), orderID).Return(view, nil).Times(1)

		rec := httptest.Do(s.T(), s.router, s.checkoutRequest("key-1", "sess-1", "", reqBody))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayHeader: "true"})
	})

	s.Run("error: missing or oversized idempotency key", func() {
		for name, key := range map[string]string{"missing": "", "too long": strings.Repeat("k", 256)} {
			s.Run(name, func() {
				rec := httptest.Do(s.T(), s.router, s.checkoutRequest(key, "sess-1", "", reqBody))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
			})
		}
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing shipping address", mutate: testutil.Field("shipping_address", nil)},
			{name: "country must be two letters", mutate: testutil.Field("shipping_address", map[string]any{
				"full_name": "A", "phone": "1", "line1": "L", "city": "C", "country": "TUR",
			})},
			{name: "unknown buyer type", mutate: testutil.Field("buyer", map[string]any{"type": "nonprofit"})},
			{name: "negative shipping", mutate: testutil.Field("shipping_cents", -1)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.Do(s.T(), s.router, s.checkoutRequest("key-1", "sess-1", "", body))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"empty cart", commands.ErrEmptyCart, http.StatusBadRequest, "Cart is empty"},
			{"unsupported region", commands.ErrUnsupportedRegion, http.StatusBadRequest, "Region is not supported"},
			{"invalid buyer", commands.ErrInvalidBuyer, http.StatusBadRequest, "Invalid buyer details"},
			{"concurrent replay", commands.ErrCheckoutInProgress, http.StatusConflict, "in progress"},
			{"oversell", commands.ErrInsufficientStock, http.StatusConflict, "Could not create order"},
			{"coupon rejected", commands.ErrCouponRejected, http.StatusBadRequest, "Coupon cannot be applied"},
			{"marked shortage", errs.Wrap(errs.Mark(errs.New("sku A: requested 2"), commands.ErrInsufficientStock), "checkout"), http.StatusConflict, "Could not create order"},
			{"marked empty cart", errs.Mark(errs.New("no items"), commands.ErrEmptyCart), http.StatusBadRequest, "Cart is empty"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.Do(s.T(), s.router, s.checkoutRequest("key-1", "sess-1", "", reqBody))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
