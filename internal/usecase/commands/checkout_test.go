//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/cart"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	checkoutKey   = "idem-1"
	cartSessionID = "cart-sess-1"
)

type CheckoutSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	m         *txMocks
	uc        commands.CheckoutCommands
	userID    uuid.UUID
	sessionID uuid.UUID
	cart      *cart.Cart
	created   *order.Order
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.uc = commands.NewCheckoutUseCase(s.m.uow, s.m.events, config.CheckoutConfig{
		Region:            "TR",
		Currency:          "try",
		ReservationTTL:    15 * time.Minute,
		MaxPaymentRetries: 3,
	}, clock.NewMockClock(testNow))

	s.userID = uuid.New()
	s.sessionID = uuid.New()
	s.created = nil
	s.cart = cart.Reconstruct(uuid.New(), &s.userID, nil, []cart.Item{{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		ProductName:    "Ceramic Mug",
		Quantity:       2,
		UnitPriceCents: 5000,
		WeightGrams:    400,
	}})
}

func (s *CheckoutSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CheckoutSuite) actor() commands.Actor {
	return commands.Actor{UserID: &s.userID, SessionID: cartSessionID}
}

func (s *CheckoutSuite) request() commands.CheckoutRequest {
	return commands.CheckoutRequest{
		IdempotencyKey: checkoutKey,
		Email:          "buyer@example.com",
		Region:         "tr",
		Buyer: commands.BuyerInput{
			Type:       "individual",
			NationalID: "10000000146",
		},
		ShippingAddress: builder.NewOrderBuilder().ShippingAddress,
	}
}

func (s *CheckoutSuite) expectNoSession(userID uuid.UUID) {
	s.m.reads.EXPECT().CheckoutSession(gomock.Any(), userID, checkoutKey).Return(nil, notFoundErr())
}

func (s *CheckoutSuite) expectStock(onHand int) {
	s.m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID, checkoutKey).Return(s.sessionID, nil)
	s.m.carts.EXPECT().FindForCheckout(gomock.Any(), gomock.Any(), gomock.Any(), cartSessionID).Return(s.cart, nil)
	s.m.stock.EXPECT().Lock(gomock.Any(), gomock.Any(), s.cart.Items()[0].SKU()).Return(onHand, nil)
	s.m.reservations.EXPECT().ActiveReservedQuantity(gomock.Any(), gomock.Any(), gomock.Any(), testNow).Return(0, nil)
}

func (s *CheckoutSuite) expectQuote() {
	s.m.reservations.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
	s.m.rates.EXPECT().ShippingRates(gomock.Any(), gomock.Any(), "TR").Return([]pricing.ShippingRate{
		{Region: "TR", MinWeightGrams: 0, PriceCents: 3990},
	}, nil)
	s.m.rates.EXPECT().TaxRate(gomock.Any(), gomock.Any(), "TR").Return(pricing.TaxRate{Region: "TR", BasisPoints: 1000}, nil)
}

func (s *CheckoutSuite) expectCommit(totalCents int64) {
	s.m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
			s.created = o
			return nil
		})
	s.m.reservations.EXPECT().AttachOrder(gomock.Any(), gomock.Any(), gomock.Len(1), gomock.Any()).Return(nil)
	s.m.carts.EXPECT().ClearItems(gomock.Any(), gomock.Any(), s.cart.ID()).Return(nil)
	s.m.sessions.EXPECT().Complete(gomock.Any(), gomock.Any(), s.sessionID, gomock.Any(), totalCents).Return(nil)
	s.m.stock.EXPECT().Decrement(gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(true, nil)
	s.m.reservations.EXPECT().MarkCommitted(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(int64(1), nil)
	s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(),
		shared.NotificationKindOrderCreated, commands.EventOrderCreated, gomock.Any(), testNow).Return(nil)
	s.m.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(commands.OrderCreatedEvent{}))
}

// =============================================================================
// Order placement
// =============================================================================

func (s *CheckoutSuite) TestCheckout_CreatesOrderWithTotals() {
	s.expectNoSession(s.userID)
	s.expectStock(5)
	s.expectQuote()
	s.expectCommit(15389)

	res, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.Require().NoError(err)
	s.False(res.IsReplayed)
	s.Require().NotNil(s.created)
	s.Equal(s.created.ID(), res.OrderID)
	s.Equal(int64(10000), s.created.Amounts().SubtotalCents)
	s.Equal(int64(3990), s.created.Amounts().ShippingCents)
	s.Equal(int64(1399), s.created.Amounts().TaxCents)
	s.Equal(int64(15389), s.created.TotalCents())
	s.Equal(int64(1399), s.created.Items()[0].TaxCents)
	s.Equal(order.StatusPending, s.created.Status())
	s.Equal(order.PaymentPending, s.created.PaymentStatus())
	s.Equal("try", s.created.Currency())
}

func (s *CheckoutSuite) TestCheckout_BindsValidCoupon() {
	c := builder.NewCouponBuilder().BuildDomain()
	redemptionID := uuid.New()

	s.expectNoSession(s.userID)
	s.expectStock(5)
	s.expectQuote()
	s.m.coupons.EXPECT().LockByCode(gomock.Any(), gomock.Any(), "SAVE10").Return(c, nil)
	s.m.coupons.EXPECT().IncrementUsage(gomock.Any(), gomock.Any(), c.ID()).Return(true, nil)
	s.m.coupons.EXPECT().CreateRedemption(gomock.Any(), gomock.Any(), c.ID(), s.userID, gomock.Nil(), false).Return(redemptionID, nil)
	s.m.coupons.EXPECT().FinalizeRedemption(gomock.Any(), gomock.Any(), redemptionID, gomock.Any()).Return(nil)
	s.expectCommit(13850)

	req := s.request()
	req.CouponCode = " save10 "
	_, err := s.uc.Checkout(context.Background(), s.actor(), req)

	s.Require().NoError(err)
	s.Equal(int64(1539), s.created.Amounts().DiscountCents)
	s.Equal(int64(13850), s.created.TotalCents())
	s.Require().NotNil(s.created.CouponCode())
	s.Equal("SAVE10", *s.created.CouponCode())
}

func (s *CheckoutSuite) TestCheckout_SkipsCouponBelowMinimum() {
	c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.MinOrderCents = 20000
	}).BuildDomain()

	s.expectNoSession(s.userID)
	s.expectStock(5)
	s.expectQuote()
	s.m.coupons.EXPECT().LockByCode(gomock.Any(), gomock.Any(), "SAVE10").Return(c, nil)
	s.expectCommit(15389)

	req := s.request()
	req.CouponCode = "SAVE10"
	_, err := s.uc.Checkout(context.Background(), s.actor(), req)

	s.Require().NoError(err)
	s.Nil(s.created.CouponCode())
	s.Equal(int64(15389), s.created.TotalCents())
}

func (s *CheckoutSuite) TestCheckout_UsesPositiveClientShipping() {
	s.expectNoSession(s.userID)
	s.expectStock(5)
	s.expectQuote()
	// (10000 + 1000) * 10% = 1100
	s.expectCommit(10000 + 1000 + 1100)

	req := s.request()
	req.ShippingCents = 1000
	_, err := s.uc.Checkout(context.Background(), s.actor(), req)

	s.Require().NoError(err)
	s.Equal(int64(1000), s.created.Amounts().ShippingCents)
}

// =============================================================================
// Rejections
// =============================================================================

func (s *CheckoutSuite) TestCheckout_InsufficientStock() {
	s.expectNoSession(s.userID)
	s.expectStock(1)

	_, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrInsufficientStock), "got %v", err)
	s.False(errs.Is(err, commands.ErrCheckoutInProgress))
	s.Nil(s.created)
}

func (s *CheckoutSuite) TestCheckout_EmptyCart() {
	s.expectNoSession(s.userID)
	s.m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID, checkoutKey).Return(s.sessionID, nil)
	s.m.carts.EXPECT().FindForCheckout(gomock.Any(), gomock.Any(), gomock.Any(), cartSessionID).
		Return(cart.Reconstruct(uuid.New(), &s.userID, nil, nil), nil)

	_, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.True(errs.Is(err, commands.ErrEmptyCart), "got %v", err)
}

func (s *CheckoutSuite) TestCheckout_MissingTaxRate() {
	s.expectNoSession(s.userID)
	s.expectStock(5)
	s.m.reservations.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
	s.m.rates.EXPECT().ShippingRates(gomock.Any(), gomock.Any(), "TR").Return([]pricing.ShippingRate{
		{Region: "TR", PriceCents: 3990},
	}, nil)
	s.m.rates.EXPECT().TaxRate(gomock.Any(), gomock.Any(), "TR").Return(pricing.TaxRate{}, notFoundErr())

	_, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.True(errs.Is(err, commands.ErrUnsupportedRegion), "got %v", err)
}

func (s *CheckoutSuite) TestCheckout_RejectsBeforeAnyIO() {
	testCases := []struct {
		name    string
		mutate  func(*commands.CheckoutRequest)
		wantErr error
	}{
		{
			name:    "missing idempotency key",
			mutate:  func(r *commands.CheckoutRequest) { r.IdempotencyKey = "  " },
			wantErr: commands.ErrIdempotencyKeyRequired,
		},
		{
			name:    "unsupported region",
			mutate:  func(r *commands.CheckoutRequest) { r.Region = "DE" },
			wantErr: commands.ErrUnsupportedRegion,
		},
		{
			name:    "malformed email",
			mutate:  func(r *commands.CheckoutRequest) { r.Email = "not-an-email" },
			wantErr: commands.ErrInvalidRequest,
		},
		{
			name:    "unknown buyer type",
			mutate:  func(r *commands.CheckoutRequest) { r.Buyer.Type = "reseller" },
			wantErr: commands.ErrInvalidBuyer,
		},
		{
			name: "corporate without tax number",
			mutate: func(r *commands.CheckoutRequest) {
				r.Buyer = commands.BuyerInput{Type: "corporate", CompanyName: "Acme"}
			},
			wantErr: commands.ErrInvalidBuyer,
		},
		{
			name:    "individual with bad checksum",
			mutate:  func(r *commands.CheckoutRequest) { r.Buyer.NationalID = "10000000147" },
			wantErr: commands.ErrInvalidBuyer,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.request()
			tc.mutate(&req)

			_, err := s.uc.Checkout(context.Background(), s.actor(), req)

			s.Require().Error(err)
			s.True(errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			for _, other := range validationErrors {
				if other != tc.wantErr {
					s.False(errs.Is(err, other), "%v also matched %v", err, other)
				}
			}
		})
	}
}

// =============================================================================
// Idempotency
// =============================================================================

func (s *CheckoutSuite) TestCheckout_ReplaysCompletedSession() {
	orderID := uuid.New()
	s.m.reads.EXPECT().CheckoutSession(gomock.Any(), s.userID, checkoutKey).Return(&shared.CheckoutSessionSnapshot{
		ID:             s.sessionID,
		UserID:         s.userID,
		IdempotencyKey: checkoutKey,
		OrderID:        &orderID,
	}, nil)

	res, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.Require().NoError(err)
	s.True(res.IsReplayed)
	s.Equal(orderID, res.OrderID)
}

func (s *CheckoutSuite) TestCheckout_SessionWithoutOrderIsInProgress() {
	s.m.reads.EXPECT().CheckoutSession(gomock.Any(), s.userID, checkoutKey).Return(&shared.CheckoutSessionSnapshot{
		ID:             s.sessionID,
		UserID:         s.userID,
		IdempotencyKey: checkoutKey,
	}, nil)

	_, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.True(errs.Is(err, commands.ErrCheckoutInProgress), "got %v", err)
}

func (s *CheckoutSuite) TestCheckout_LosesSessionRaceAndReplays() {
	orderID := uuid.New()
	s.expectNoSession(s.userID)
	s.m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID, checkoutKey).Return(uuid.Nil, duplicateErr())
	s.m.reads.EXPECT().CheckoutSession(gomock.Any(), s.userID, checkoutKey).Return(&shared.CheckoutSessionSnapshot{
		ID:      s.sessionID,
		UserID:  s.userID,
		OrderID: &orderID,
	}, nil)

	res, err := s.uc.Checkout(context.Background(), s.actor(), s.request())

	s.Require().NoError(err)
	s.True(res.IsReplayed)
	s.Equal(orderID, res.OrderID)
}

// =============================================================================
// Guest checkout
// =============================================================================

func (s *CheckoutSuite) TestCheckout_GuestGetsAccountOnFirstCheckout() {
	guestID := uuid.New()
	orderID := uuid.New()
	s.m.reads.EXPECT().UserByEmail(gomock.Any(), "buyer@example.com").Return(nil, notFoundErr())
	s.m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
			s.True(u.IsGuest())
			s.Equal(user.RoleCustomer, u.Role())
			return guestID, nil
		})
	s.m.reads.EXPECT().CheckoutSession(gomock.Any(), guestID, checkoutKey).Return(&shared.CheckoutSessionSnapshot{
		UserID:  guestID,
		OrderID: &orderID,
	}, nil)

	res, err := s.uc.Checkout(context.Background(), commands.Actor{SessionID: cartSessionID}, s.request())

	s.Require().NoError(err)
	s.Equal(orderID, res.OrderID)
}

func (s *CheckoutSuite) TestCheckout_GuestLosesAccountRace() {
	existingID := uuid.New()
	orderID := uuid.New()
	email, err := user.NewEmail("buyer@example.com")
	s.Require().NoError(err)
	existing := user.ReconstructUser(existingID, email, "x", user.RoleCustomer, true, true, testNow, testNow)

	s.m.reads.EXPECT().UserByEmail(gomock.Any(), "buyer@example.com").Return(nil, notFoundErr())
	s.m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, duplicateErr())
	s.m.reads.EXPECT().UserByEmail(gomock.Any(), "buyer@example.com").Return(existing, nil)
	s.m.reads.EXPECT().CheckoutSession(gomock.Any(), existingID, checkoutKey).Return(&shared.CheckoutSessionSnapshot{
		UserID:  existingID,
		OrderID: &orderID,
	}, nil)

	res, err := s.uc.Checkout(context.Background(), commands.Actor{SessionID: cartSessionID}, s.request())

	s.Require().NoError(err)
	s.True(res.IsReplayed)
}
