package order

import (
	"errors"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus            = errors.New("invalid order status")
	ErrInvalidPaymentStatus     = errors.New("invalid payment status")
	ErrEmptyOrder               = errors.New("order must have at least one item")
	ErrPaymentPermanentlyFailed = errors.New("payment permanently failed for this order")
	ErrOrderAlreadyPaid         = errors.New("order is already paid")
	ErrOrderCancelled           = errors.New("order is cancelled")
	ErrOrderNotPaid             = errors.New("order has no captured payment")
	ErrInvalidRefundAmount      = errors.New("refund amount must be positive")
	ErrAlreadyFullyRefunded     = errors.New("order is already fully refunded")
	ErrOrderNotEditable         = errors.New("order can no longer be modified")
	ErrCouponAlreadyApplied     = errors.New("a coupon is already applied to this order")
	ErrCouponNotApplied         = errors.New("coupon is not applied to this order")
	ErrInvalidTransition        = errors.New("invalid order status transition")
	ErrTrackingRequired         = errors.New("tracking number is required")
)

type Item struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	VariantID      *uuid.UUID
	ProductName    string
	Quantity       int
	UnitPriceCents int64
	LineTotalCents int64
	TaxCents       int64
}

type Order struct {
	id                uuid.UUID
	number            string
	userID            uuid.UUID
	status            Status
	paymentStatus     PaymentStatus
	paymentProvider   *string
	paymentIntentID   *string
	paymentRetryCount int
	amounts           Amounts
	totalCents        int64
	refundCents       int64
	refundRequested   bool
	refunded          bool
	couponID          *uuid.UUID
	couponCode        *string
	currency          string
	region            string
	idempotencyKey    string
	buyer             Buyer
	shippingAddress   ShippingAddress
	trackingNumber    *string
	invoiceURL        *string
	items             []Item
	paidAt            *time.Time
	shippedAt         *time.Time
	deliveredAt       *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

type NewParams struct {
	Number          string
	UserID          uuid.UUID
	Currency        string
	Region          string
	IdempotencyKey  string
	Buyer           Buyer
	ShippingAddress ShippingAddress
	Amounts         Amounts
	CouponID        *uuid.UUID
	CouponCode      *string
	Items           []Item
	Now             time.Time
}

func NewOrder(p NewParams) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	items := make([]Item, len(p.Items))
	copy(items, p.Items)
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}

	o := &Order{
		id:              uuid.New(),
		number:          p.Number,
		userID:          p.UserID,
		status:          StatusPending,
		paymentStatus:   PaymentPending,
		amounts:         p.Amounts,
		couponID:        p.CouponID,
		couponCode:      p.CouponCode,
		currency:        p.Currency,
		region:          p.Region,
		idempotencyKey:  p.IdempotencyKey,
		buyer:           p.Buyer,
		shippingAddress: p.ShippingAddress,
		items:           items,
		createdAt:       p.Now,
		updatedAt:       p.Now,
	}
	o.recalculateTotal()
	return o, nil
}

type Snapshot struct {
	ID                uuid.UUID
	Number            string
	UserID            uuid.UUID
	Status            Status
	PaymentStatus     PaymentStatus
	PaymentProvider   *string
	PaymentIntentID   *string
	PaymentRetryCount int
	Amounts           Amounts
	TotalCents        int64
	RefundCents       int64
	RefundRequested   bool
	Refunded          bool
	CouponID          *uuid.UUID
	CouponCode        *string
	Currency          string
	Region            string
	IdempotencyKey    string
	Buyer             Buyer
	ShippingAddress   ShippingAddress
	TrackingNumber    *string
	InvoiceURL        *string
	Items             []Item
	PaidAt            *time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:                s.ID,
		number:            s.Number,
		userID:            s.UserID,
		status:            s.Status,
		paymentStatus:     s.PaymentStatus,
		paymentProvider:   s.PaymentProvider,
		paymentIntentID:   s.PaymentIntentID,
		paymentRetryCount: s.PaymentRetryCount,
		amounts:           s.Amounts,
		totalCents:        s.TotalCents,
		refundCents:       s.RefundCents,
		refundRequested:   s.RefundRequested,
		refunded:          s.Refunded,
		couponID:          s.CouponID,
		couponCode:        s.CouponCode,
		currency:          s.Currency,
		region:            s.Region,
		idempotencyKey:    s.IdempotencyKey,
		buyer:             s.Buyer,
		shippingAddress:   s.ShippingAddress,
		trackingNumber:    s.TrackingNumber,
		invoiceURL:        s.InvoiceURL,
		items:             s.Items,
		paidAt:            s.PaidAt,
		shippedAt:         s.ShippedAt,
		deliveredAt:       s.DeliveredAt,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                o.id,
		Number:            o.number,
		UserID:            o.userID,
		Status:            o.status,
		PaymentStatus:     o.paymentStatus,
		PaymentProvider:   o.paymentProvider,
		PaymentIntentID:   o.paymentIntentID,
		PaymentRetryCount: o.paymentRetryCount,
		Amounts:           o.amounts,
		TotalCents:        o.totalCents,
		RefundCents:       o.refundCents,
		RefundRequested:   o.refundRequested,
		Refunded:          o.refunded,
		CouponID:          o.couponID,
		CouponCode:        o.couponCode,
		Currency:          o.currency,
		Region:            o.region,
		IdempotencyKey:    o.idempotencyKey,
		Buyer:             o.buyer,
		ShippingAddress:   o.shippingAddress,
		TrackingNumber:    o.trackingNumber,
		InvoiceURL:        o.invoiceURL,
		Items:             o.items,
		PaidAt:            o.paidAt,
		ShippedAt:         o.shippedAt,
		DeliveredAt:       o.deliveredAt,
		CreatedAt:         o.createdAt,
		UpdatedAt:         o.updatedAt,
	}
}

func (o *Order) recalculateTotal() {
	a := o.amounts
	o.totalCents = pricing.Total(a.SubtotalCents, a.ShippingCents, a.TaxCents, a.DiscountCents)
}

// OrderAmount is the coupon base: subtotal plus shipping plus tax.
func (o *Order) OrderAmount() int64 {
	return o.amounts.SubtotalCents + o.amounts.ShippingCents + o.amounts.TaxCents
}

// CanBeAccessedBy authorizes either the owner or a caller presenting the
// idempotency key the order was created with.
func (o *Order) CanBeAccessedBy(requesterID *uuid.UUID, idempotencyKey string) bool {
	if requesterID != nil && *requesterID == o.userID {
		return true
	}
	return keysEqual(o.idempotencyKey, idempotencyKey)
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

// ApplyCoupon sets the discount of a still pending, unpaid order.
func (o *Order) ApplyCoupon(couponID uuid.UUID, code string, discountCents int64, now time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if o.couponID != nil {
		return ErrCouponAlreadyApplied
	}
	o.couponID = &couponID
	o.couponCode = &code
	o.amounts.DiscountCents = discountCents
	o.recalculateTotal()
	o.touch(now)
	return nil
}

// RemoveCoupon returns the id of the coupon that was removed.
func (o *Order) RemoveCoupon(code string, now time.Time) (uuid.UUID, error) {
	if err := o.ensureEditable(); err != nil {
		return uuid.Nil, err
	}
	if o.couponID == nil || o.couponCode == nil || *o.couponCode != code {
		return uuid.Nil, ErrCouponNotApplied
	}
	id := *o.couponID
	o.couponID = nil
	o.couponCode = nil
	o.amounts.DiscountCents = 0
	o.recalculateTotal()
	o.touch(now)
	return id, nil
}

func (o *Order) ensureEditable() error {
	if o.status != StatusPending {
		return ErrOrderNotEditable
	}
	switch o.paymentStatus {
	case PaymentPending, PaymentFailed, PaymentRequiresAction, PaymentCancelled:
		return nil
	default:
		return ErrOrderNotEditable
	}
}

// EnsurePayable guards creation of a new payment intent.
func (o *Order) EnsurePayable() error {
	switch {
	case o.paymentStatus == PaymentFailedPermanent:
		return ErrPaymentPermanentlyFailed
	case o.status == StatusCancelled:
		return ErrOrderCancelled
	case o.paymentStatus == PaymentSucceeded || o.paymentStatus == PaymentRefunded:
		return ErrOrderAlreadyPaid
	}
	return nil
}

// NextIntent returns the intent a new payment attempt updates and the
// provider idempotency key used when one has to be created. A cancelled
// intent cannot be updated, so the attempt creates a fresh intent under a
// key derived from the cancelled one.
func (o *Order) NextIntent() (existingID *string, providerKey string) {
	providerKey = "intent-" + o.id.String()
	if o.paymentIntentID == nil {
		return nil, providerKey
	}
	if o.paymentStatus == PaymentCancelled {
		return nil, providerKey + "-after-" + *o.paymentIntentID
	}
	id := *o.paymentIntentID
	return &id, providerKey
}

// AttachIntent records the provider intent; its status goes through
// ApplyPaymentStatus.
func (o *Order) AttachIntent(provider, intentID string, now time.Time) {
	o.paymentProvider = &provider
	o.paymentIntentID = &intentID
	o.touch(now)
}

func (o *Order) AttachInvoice(url string, now time.Time) {
	o.invoiceURL = &url
	o.touch(now)
}

type RefundPlan struct {
	AmountCents      int64
	AccumulatedCents int64
	Full             bool
}

// PlanRefund computes the refund for amount, or the whole remaining total
// when amount is nil. It does not change the order.
func (o *Order) PlanRefund(amount *int64) (RefundPlan, error) {
	if amount != nil && *amount <= 0 {
		return RefundPlan{}, ErrInvalidRefundAmount
	}
	if o.paymentStatus != PaymentSucceeded || o.paymentIntentID == nil {
		if o.refunded || o.paymentStatus == PaymentRefunded {
			return RefundPlan{}, ErrAlreadyFullyRefunded
		}
		return RefundPlan{}, ErrOrderNotPaid
	}
	if o.refundCents >= o.totalCents {
		return RefundPlan{}, ErrAlreadyFullyRefunded
	}

	requested := o.totalCents
	if amount != nil {
		requested = *amount
	}
	accumulated := o.refundCents + requested
	if accumulated > o.totalCents {
		accumulated = o.totalCents
	}
	return RefundPlan{
		AmountCents:      accumulated - o.refundCents,
		AccumulatedCents: accumulated,
		Full:             accumulated == o.totalCents,
	}, nil
}

// RecordRefund applies a plan once the provider accepted it. The order is
// cancelled only once the whole total has been returned.
func (o *Order) RecordRefund(plan RefundPlan, now time.Time) {
	o.refundCents = plan.AccumulatedCents
	o.refundRequested = true
	if plan.Full {
		o.status = StatusCancelled
	}
	o.touch(now)
}

type PaymentTransition struct {
	Changed         bool
	BecameSucceeded bool
	BecamePermanent bool
	BecameRefunded  bool
}

// ApplyPaymentStatus moves the payment state machine. Repeating a status the
// order already holds is a no-op, except failed which counts every attempt.
func (o *Order) ApplyPaymentStatus(status PaymentStatus, maxRetries int, now time.Time) (PaymentTransition, error) {
	if !status.IsValid() {
		return PaymentTransition{}, ErrInvalidPaymentStatus
	}
	current := o.paymentStatus

	switch current {
	case PaymentRefunded:
		return PaymentTransition{}, nil
	case PaymentSucceeded:
		if status != PaymentRefunded {
			return PaymentTransition{}, nil
		}
	case PaymentFailedPermanent:
		if status != PaymentSucceeded && status != PaymentRefunded {
			return PaymentTransition{}, nil
		}
	}
	if status == current && status != PaymentFailed {
		return PaymentTransition{}, nil
	}

	var t PaymentTransition
	switch status {
	case PaymentFailed:
		o.paymentRetryCount++
		if o.paymentRetryCount >= maxRetries {
			o.paymentStatus = PaymentFailedPermanent
			t.BecamePermanent = true
		} else {
			o.paymentStatus = PaymentFailed
		}
	case PaymentFailedPermanent:
		o.paymentStatus = PaymentFailedPermanent
		t.BecamePermanent = true
	case PaymentSucceeded:
		o.paymentStatus = PaymentSucceeded
		o.paymentRetryCount = 0
		if o.status == StatusPending {
			o.status = StatusProcessing
		}
		paid := now
		o.paidAt = &paid
		t.BecameSucceeded = true
	case PaymentRefunded:
		o.paymentStatus = PaymentRefunded
		o.refunded = true
		o.refundRequested = false
		o.refundCents = o.totalCents
		o.status = StatusCancelled
		t.BecameRefunded = true
	default:
		o.paymentStatus = status
	}

	t.Changed = true
	o.touch(now)
	return t, nil
}

func (o *Order) MarkShipped(trackingNumber string, now time.Time) error {
	if trackingNumber == "" {
		return ErrTrackingRequired
	}
	if o.status != StatusProcessing {
		return ErrInvalidTransition
	}
	o.status = StatusShipped
	o.trackingNumber = &trackingNumber
	shipped := now
	o.shippedAt = &shipped
	o.touch(now)
	return nil
}

func (o *Order) MarkDelivered(now time.Time) error {
	if o.status != StatusShipped {
		return ErrInvalidTransition
	}
	o.status = StatusDelivered
	delivered := now
	o.deliveredAt = &delivered
	o.touch(now)
	return nil
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) Number() string                   { return o.number }
func (o *Order) UserID() uuid.UUID                { return o.userID }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) PaymentStatus() PaymentStatus     { return o.paymentStatus }
func (o *Order) PaymentProvider() *string         { return o.paymentProvider }
func (o *Order) PaymentIntentID() *string         { return o.paymentIntentID }
func (o *Order) PaymentRetryCount() int           { return o.paymentRetryCount }
func (o *Order) Amounts() Amounts                 { return o.amounts }
func (o *Order) TotalCents() int64                { return o.totalCents }
func (o *Order) RefundCents() int64               { return o.refundCents }
func (o *Order) RefundRequested() bool            { return o.refundRequested }
func (o *Order) Refunded() bool                   { return o.refunded }
func (o *Order) CouponID() *uuid.UUID             { return o.couponID }
func (o *Order) CouponCode() *string              { return o.couponCode }
func (o *Order) Currency() string                 { return o.currency }
func (o *Order) Region() string                   { return o.region }
func (o *Order) IdempotencyKey() string           { return o.idempotencyKey }
func (o *Order) Buyer() Buyer                     { return o.buyer }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) TrackingNumber() *string          { return o.trackingNumber }
func (o *Order) InvoiceURL() *string              { return o.invoiceURL }
func (o *Order) Items() []Item                    { return o.items }
func (o *Order) PaidAt() *time.Time               { return o.paidAt }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
