package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/cart"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/legalid"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/password"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

var errSessionClaimed = errs.New("checkout session already claimed")

// Actor is the caller of a checkout. Anonymous callers have no UserID and
// are identified by their cart session.
type Actor struct {
	UserID    *uuid.UUID
	SessionID string
}

type BuyerInput struct {
	Type        string
	TaxNumber   string
	TaxOffice   string
	NationalID  string
	CompanyName string
}

type CheckoutRequest struct {
	IdempotencyKey  string
	Email           string
	Region          string
	Buyer           BuyerInput
	ShippingAddress order.ShippingAddress
	// ShippingCents overrides the rate table when positive.
	ShippingCents int64
	CouponCode    string
}

type CheckoutResult struct {
	OrderID    uuid.UUID
	IsReplayed bool
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, actor Actor, req CheckoutRequest) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow       shared.UnitOfWork
	events    EventPublisher
	evaluator coupon.Evaluator
	factory   *reservation.Factory
	cfg       config.CheckoutConfig
	clock     clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, events EventPublisher, cfg config.CheckoutConfig, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:       uow,
		events:    events,
		evaluator: coupon.NewEvaluator(),
		factory:   reservation.NewFactory(clk, cfg.ReservationTTL),
		cfg:       cfg,
		clock:     clk,
	}
}

type validatedCheckout struct {
	email user.Email
	buyer order.Buyer
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, actor Actor, req CheckoutRequest) (res *CheckoutResult, err error) {
	ctx, span := tracer.Start(ctx, "Checkout")
	defer func() { endSpan(span, err) }()

	valid, err := uc.validate(req)
	if err != nil {
		return nil, err
	}

	userID, err := uc.resolveUser(ctx, actor, valid.email)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if replay, rerr := uc.replay(ctx, userID, req.IdempotencyKey); rerr != nil || replay != nil {
		return replay, rerr
	}

	var created *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, terr := uc.placeOrder(ctx, tx, actor, userID, req, valid)
		if terr != nil {
			return terr
		}
		created = o
		return nil
	})
	if err != nil {
		if errs.Is(err, errSessionClaimed) {
			// A concurrent request with the same key committed first.
			replay, rerr := uc.replay(ctx, userID, req.IdempotencyKey)
			if rerr != nil {
				return nil, rerr
			}
			if replay != nil {
				return replay, nil
			}
			return nil, ErrCheckoutInProgress
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("order.id", created.ID().String()))
	uc.events.Publish(ctx, created.ID().String(), OrderCreatedEvent{
		Type:        EventOrderCreated,
		OrderID:     created.ID(),
		OrderNumber: created.Number(),
		UserID:      created.UserID(),
		TotalCents:  created.TotalCents(),
		Currency:    created.Currency(),
		OccurredAt:  created.CreatedAt(),
	})

	return &CheckoutResult{OrderID: created.ID()}, nil
}

// validate runs every check that needs no storage, so a malformed request
// never opens a transaction.
func (uc *checkoutUseCaseImpl) validate(req CheckoutRequest) (validatedCheckout, error) {
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return validatedCheckout{}, ErrIdempotencyKeyRequired
	}
	if !strings.EqualFold(req.Region, uc.cfg.Region) {
		return validatedCheckout{}, ErrUnsupportedRegion
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		return validatedCheckout{}, errs.Mark(err, ErrInvalidRequest)
	}

	buyerType, err := legalid.ParseBuyerType(req.Buyer.Type)
	if err != nil {
		return validatedCheckout{}, errs.Mark(err, ErrInvalidBuyer)
	}
	if err := legalid.ValidateBuyer(buyerType, req.Buyer.TaxNumber, req.Buyer.NationalID); err != nil {
		return validatedCheckout{}, errs.Mark(err, ErrInvalidBuyer)
	}

	return validatedCheckout{
		email: email,
		buyer: order.Buyer{
			Email:      email.Value(),
			Type:       buyerType,
			TaxNumber:  req.Buyer.TaxNumber,
			TaxOffice:  req.Buyer.TaxOffice,
			NationalID: req.Buyer.NationalID,
			Company:    req.Buyer.CompanyName,
		},
	}, nil
}

// resolveUser returns the caller, or finds or creates a guest account for
// the checkout email.
func (uc *checkoutUseCaseImpl) resolveUser(ctx context.Context, actor Actor, email user.Email) (uuid.UUID, error) {
	if actor.UserID != nil {
		return *actor.UserID, nil
	}

	existing, err := uc.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err == nil {
		return existing.ID(), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	hash, err := password.UnusableHash()
	if err != nil {
		return uuid.Nil, err
	}
	guest := user.NewGuestUser(email, hash)

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Users().Create(ctx, tx.DB(), guest)
		if cerr != nil {
			return cerr
		}
		id = created
		return nil
	})
	if err == nil {
		return id, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return uuid.Nil, err
	}

	// Lost the race against a concurrent guest checkout with the same email.
	existing, err = uc.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		return uuid.Nil, err
	}
	return existing.ID(), nil
}

func (uc *checkoutUseCaseImpl) replay(ctx context.Context, userID uuid.UUID, key string) (*CheckoutResult, error) {
	session, err := uc.uow.CommandReads().CheckoutSession(ctx, userID, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.OrderID == nil {
		return nil, ErrCheckoutInProgress
	}
	slog.InfoContext(ctx, "checkout replayed",
		slog.String("order_id", session.OrderID.String()),
		slog.String("idempotency_key", key))
	return &CheckoutResult{OrderID: *session.OrderID, IsReplayed: true}, nil
}

func (uc *checkoutUseCaseImpl) placeOrder(
	ctx context.Context,
	tx shared.Tx,
	actor Actor,
	userID uuid.UUID,
	req CheckoutRequest,
	valid validatedCheckout,
) (*order.Order, error) {
	now := uc.clock.Now()

	sessionID, err := tx.CheckoutSessions().Create(ctx, tx.DB(), userID, req.IdempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errSessionClaimed)
		}
		return nil, err
	}

	c, err := tx.Carts().FindForCheckout(ctx, tx.DB(), actor.UserID, actor.SessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if err := uc.checkStock(ctx, tx, c, now); err != nil {
		return nil, err
	}

	holds, err := uc.factory.Reserve(userID, req.IdempotencyKey, c.ReservationLines())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	if err := tx.Reservations().CreateBatch(ctx, tx.DB(), holds); err != nil {
		return nil, err
	}

	quote, err := uc.quote(ctx, tx, c, req.ShippingCents)
	if err != nil {
		return nil, err
	}

	applied, err := uc.bindCoupon(ctx, tx, userID, req.CouponCode, quote.OrderAmount(), now)
	if err != nil {
		return nil, err
	}

	params := order.NewParams{
		Number:          order.NewNumber(now, nil),
		UserID:          userID,
		Currency:        uc.cfg.Currency,
		Region:          uc.cfg.Region,
		IdempotencyKey:  req.IdempotencyKey,
		Buyer:           valid.buyer,
		ShippingAddress: req.ShippingAddress,
		Amounts: order.Amounts{
			SubtotalCents: quote.Subtotal,
			ShippingCents: quote.Shipping,
			TaxCents:      quote.Tax,
		},
		Items: orderItems(c, quote),
		Now:   now,
	}
	if applied != nil {
		params.Amounts.DiscountCents = applied.discountCents
		params.CouponID = &applied.couponID
		params.CouponCode = &applied.code
	}

	o, err := order.NewOrder(params)
	if err != nil {
		return nil, errs.Mark(err, ErrEmptyCart)
	}
	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		return nil, err
	}

	holdIDs := make([]uuid.UUID, len(holds))
	for i, h := range holds {
		holdIDs[i] = h.ID()
	}
	if err := tx.Reservations().AttachOrder(ctx, tx.DB(), holdIDs, o.ID()); err != nil {
		return nil, err
	}
	if err := tx.Carts().ClearItems(ctx, tx.DB(), c.ID()); err != nil {
		return nil, err
	}
	if err := tx.CheckoutSessions().Complete(ctx, tx.DB(), sessionID, o.ID(), o.TotalCents()); err != nil {
		return nil, err
	}
	if err := uc.commitHolds(ctx, tx, holds, holdIDs); err != nil {
		return nil, err
	}
	if applied != nil {
		if err := tx.Coupons().FinalizeRedemption(ctx, tx.DB(), applied.redemptionID, o.ID()); err != nil {
			return nil, err
		}
	}
	if err := enqueueNotification(ctx, tx, shared.NotificationKindOrderCreated, EventOrderCreated, o, now); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "order created",
		slog.String("order_id", o.ID().String()),
		slog.String("order_number", o.Number()),
		slog.Int64("total_cents", o.TotalCents()))
	return o, nil
}

// checkStock locks every distinct SKU row in a fixed order and compares the
// summed demand per SKU against stock minus live holds.
func (uc *checkoutUseCaseImpl) checkStock(ctx context.Context, tx shared.Tx, c *cart.Cart, now time.Time) error {
	demand, keys := reservation.Demand(c.ReservationLines())
	available := make(map[reservation.SKUKey]int, len(keys))
	for _, k := range keys {
		sku := k.SKU()
		onHand, err := tx.Stock().Lock(ctx, tx.DB(), sku)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				available[k] = 0
				continue
			}
			return err
		}
		held, err := tx.Reservations().ActiveReservedQuantity(ctx, tx.DB(), sku, now)
		if err != nil {
			return err
		}
		available[k] = onHand - held
	}

	if err := reservation.CheckAvailability(demand, keys, available); err != nil {
		slog.InfoContext(ctx, "checkout rejected for stock", slog.String("reason", err.Error()))
		return errs.Mark(err, ErrInsufficientStock)
	}
	return nil
}

func (uc *checkoutUseCaseImpl) quote(ctx context.Context, tx shared.Tx, c *cart.Cart, clientShipping int64) (pricing.Quote, error) {
	lines := c.PricingLines()

	rates, err := tx.Rates().ShippingRates(ctx, tx.DB(), uc.cfg.Region)
	if err != nil {
		return pricing.Quote{}, err
	}
	shipping, err := pricing.ResolveShipping(clientShipping, pricing.SelectShippingRate(rates, pricing.TotalWeight(lines)))
	if err != nil {
		return pricing.Quote{}, errs.Mark(err, ErrShippingUnavailable)
	}

	taxRate, err := tx.Rates().TaxRate(ctx, tx.DB(), uc.cfg.Region)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.Quote{}, errs.Mark(pricing.ErrTaxRateNotFound, ErrUnsupportedRegion)
		}
		return pricing.Quote{}, err
	}

	return pricing.NewQuote(lines, shipping, taxRate), nil
}

type appliedCoupon struct {
	couponID      uuid.UUID
	code          string
	discountCents int64
	redemptionID  uuid.UUID
}

// bindCoupon locks the coupon and records a speculative redemption. A
// coupon that fails validation is dropped and checkout continues without
// a discount.
func (uc *checkoutUseCaseImpl) bindCoupon(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	rawCode string,
	orderAmount int64,
	now time.Time,
) (*appliedCoupon, error) {
	if strings.TrimSpace(rawCode) == "" {
		return nil, nil
	}
	code := coupon.NormalizeCode(rawCode)
	skip := func(reason string) (*appliedCoupon, error) {
		slog.InfoContext(ctx, "coupon skipped at checkout",
			slog.String("code", code),
			slog.String("reason", reason))
		return nil, nil
	}

	c, err := tx.Coupons().LockByCode(ctx, tx.DB(), code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return skip(coupon.MsgNotFound)
		}
		return nil, err
	}

	eval := uc.evaluator.Evaluate(c, orderAmount, now)
	if !eval.Valid {
		return skip(eval.Message)
	}

	if c.SingleUsePerUser() {
		used, err := tx.Coupons().HasRedemption(ctx, tx.DB(), c.ID(), userID)
		if err != nil {
			return nil, err
		}
		if used {
			return skip("already redeemed by user")
		}
	}

	ok, err := tx.Coupons().IncrementUsage(ctx, tx.DB(), c.ID())
	if err != nil {
		return nil, err
	}
	if !ok {
		return skip(coupon.MsgUsageLimit)
	}

	redemptionID, err := tx.Coupons().CreateRedemption(ctx, tx.DB(), c.ID(), userID, nil, c.SingleUsePerUser())
	if err != nil {
		return nil, err
	}

	return &appliedCoupon{
		couponID:      c.ID(),
		code:          c.Code().String(),
		discountCents: eval.DiscountCents,
		redemptionID:  redemptionID,
	}, nil
}

// commitHolds turns holds into permanent stock decrements. The decrement is
// guarded by stock >= qty so a concurrent writer can never drive it negative.
func (uc *checkoutUseCaseImpl) commitHolds(ctx context.Context, tx shared.Tx, holds []*reservation.StockReservation, ids []uuid.UUID) error {
	for _, h := range holds {
		ok, err := tx.Stock().Decrement(ctx, tx.DB(), h.SKU(), h.Quantity())
		if err != nil {
			return err
		}
		if !ok {
			return errs.Mark(reservation.Shortage{SKU: h.SKU(), Requested: h.Quantity()}, ErrInsufficientStock)
		}
	}
	_, err := tx.Reservations().MarkCommitted(ctx, tx.DB(), ids)
	return err
}

func orderItems(c *cart.Cart, quote pricing.Quote) []order.Item {
	items := make([]order.Item, len(c.Items()))
	for i, it := range c.Items() {
		items[i] = order.Item{
			ProductID:      it.ProductID,
			VariantID:      it.VariantID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: int64(it.Quantity) * it.UnitPriceCents,
			TaxCents:       quote.LineTaxes[i],
		}
	}
	return items
}

func enqueueNotification(ctx context.Context, tx shared.Tx, kind, topic string, o *order.Order, runAt time.Time) error {
	payload, err := json.Marshal(shared.NotificationPayload{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		Email:       o.Buyer().Email,
		TotalCents:  o.TotalCents(),
		Currency:    o.Currency(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, runAt)
}
