//go:build e2e

package checkout_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	resdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/response"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/cookie"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/dbtest"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/httptest"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const checkoutURL = "/api/checkout"

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) checkout(key, session, token, email, couponCode string) (int, resdto.OrderResponse, http.Header) {
	body := builder.NewOrderBuilder().BuildCheckoutRequestDTO()
	body.Email = email
	body.CouponCode = couponCode

	headers := map[string]string{"Idempotency-Key": key}
	if session != "" {
		headers[cookie.CartSessionHeader] = session
	}
	w := httptest.Do(s.T(), s.Env.Router, httptest.Request{
		Method:    http.MethodPost,
		Path:      checkoutURL,
		Body:      body,
		AuthToken: token,
		Headers:   headers,
	})

	var res resdto.OrderResponse
	if w.Code == http.StatusOK || w.Code == http.StatusCreated {
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w.Code, res, w.Header()
}

func (s *checkoutSuite) TestGuestCheckoutIsIdempotent() {
	t := s.T()
	productID := dbtest.CreateTestProduct(t, s.Env.DB, "Kettle", 5000, 10)
	dbtest.CreateGuestCart(t, s.Env.DB, "sess-guest", map[uuid.UUID]int{productID: 2})

	status, first, header := s.checkout("key-1", "sess-guest", "", "guest@example.com", "")

	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "/api/orders/"+first.ID.String(), header.Get("Location"))
	require.Equal(t, int64(10000), first.SubtotalCents)
	require.Equal(t, int64(3990), first.ShippingCents)
	require.Equal(t, int64(1399), first.TaxCents)
	require.Equal(t, int64(15389), first.TotalCents)
	require.Equal(t, "pending", first.PaymentStatus)
	require.Len(t, first.Items, 1)
	require.Equal(t, 8, dbtest.ProductStock(t, s.Env.DB, productID))
	require.Equal(t, 2, dbtest.ReservationQuantity(t, s.Env.DB, productID, "committed"))

	status, replay, header := s.checkout("key-1", "sess-guest", "", "guest@example.com", "")

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "true", header.Get("Idempotent-Replayed"))
	require.Equal(t, first.ID, replay.ID)
	require.Equal(t, 1, dbtest.CountOrders(t, s.Env.DB))
	require.Equal(t, 8, dbtest.ProductStock(t, s.Env.DB, productID))
}

func (s *checkoutSuite) TestEmptyCartIsRejected() {
	t := s.T()

	status, _, _ := s.checkout("key-empty", "sess-none", "", "guest@example.com", "")

	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, 0, dbtest.CountOrders(t, s.Env.DB))
}

func (s *checkoutSuite) TestConcurrentCheckoutsDoNotOversell() {
	t := s.T()
	const (
		stock   = 3
		buyers  = 8
		perCart = 1
	)
	productID := dbtest.CreateTestProduct(t, s.Env.DB, "Limited Mug", 5000, stock)
	for i := range buyers {
		dbtest.CreateGuestCart(t, s.Env.DB, fmt.Sprintf("sess-%d", i), map[uuid.UUID]int{productID: perCart})
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = map[int]int{}
	)
	for i := range buyers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status, _, _ := s.checkout(
				fmt.Sprintf("key-%d", i),
				fmt.Sprintf("sess-%d", i),
				"",
				fmt.Sprintf("buyer%d@example.com", i),
				"",
			)
			mu.Lock()
			statuses[status]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	require.Equal(t, stock, statuses[http.StatusCreated], "statuses: %v", statuses)
	require.Equal(t, buyers-stock, statuses[http.StatusConflict], "statuses: %v", statuses)
	require.Equal(t, 0, dbtest.ProductStock(t, s.Env.DB, productID))
	require.Equal(t, stock, dbtest.CountOrders(t, s.Env.DB))
	require.Equal(t, 0, dbtest.ReservationQuantity(t, s.Env.DB, productID, "reserved"))
}

func (s *checkoutSuite) TestAuthenticatedCheckoutWithCoupon() {
	t := s.T()
	userID, token := s.TokenFor("member@example.com", user.RoleCustomer)
	productID := dbtest.CreateTestProduct(t, s.Env.DB, "Kettle", 5000, 10)
	dbtest.CreateUserCart(t, s.Env.DB, userID, map[uuid.UUID]int{productID: 2})
	dbtest.CreatePercentCoupon(t, s.Env.DB, "SAVE10", 10)

	status, res, _ := s.checkout("key-member", "", token, "member@example.com", "SAVE10")

	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, res.CouponCode)
	require.Equal(t, "SAVE10", *res.CouponCode)
	require.Equal(t, int64(1539), res.DiscountCents)
	require.Equal(t, int64(13850), res.TotalCents)

	w := httptest.Do(t, s.Env.Router, httptest.Request{
		Method:    http.MethodGet,
		Path:      "/api/orders",
		AuthToken: token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), res.ID.String())
}

func (s *checkoutSuite) TestOrderIsHiddenFromStrangers() {
	t := s.T()
	productID := dbtest.CreateTestProduct(t, s.Env.DB, "Kettle", 5000, 10)
	dbtest.CreateGuestCart(t, s.Env.DB, "sess-private", map[uuid.UUID]int{productID: 1})
	status, res, _ := s.checkout("key-private", "sess-private", "", "private@example.com", "")
	require.Equal(t, http.StatusCreated, status)

	_, strangerToken := s.TokenFor("stranger@example.com", user.RoleCustomer)

	testCases := []struct {
		name    string
		request httptest.Request
		want    int
	}{
		{
			name:    "guest with the checkout key",
			request: httptest.Request{Headers: map[string]string{"Idempotency-Key": "key-private"}},
			want:    http.StatusOK,
		},
		{
			name:    "guest with another key",
			request: httptest.Request{Headers: map[string]string{"Idempotency-Key": "key-other"}},
			want:    http.StatusForbidden,
		},
		{
			name:    "other customer",
			request: httptest.Request{AuthToken: strangerToken},
			want:    http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		req := tc.request
		req.Method = http.MethodGet
		req.Path = "/api/orders/" + res.ID.String()

		w := httptest.Do(t, s.Env.Router, req)

		require.Equal(t, tc.want, w.Code, tc.name)
	}
}
