package commands

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

type IntentRequest struct {
	OrderID     uuid.UUID
	OrderNumber string
	AmountCents int64
	Currency    string
	Email       string
	// ExistingIntentID makes the call an amount update instead of a create.
	ExistingIntentID *string
	IdempotencyKey   string
}

type IntentResult struct {
	Provider     string
	IntentID     string
	ClientSecret string
	Status       order.PaymentStatus
}

type PaymentProvider interface {
	CreateOrUpdateIntent(ctx context.Context, req IntentRequest) (IntentResult, error)
	Refund(ctx context.Context, intentID string, amountCents int64, idempotencyKey string) (order.PaymentStatus, error)
	Cancel(ctx context.Context, intentID string) (order.PaymentStatus, error)
}

type NotificationSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type InvoiceLine struct {
	Name           string
	Quantity       int
	UnitPriceCents int64
	TaxCents       int64
}

type InvoiceRequest struct {
	OrderID       uuid.UUID
	OrderNumber   string
	Currency      string
	BuyerEmail    string
	BuyerType     string
	TaxNumber     string
	TaxOffice     string
	NationalID    string
	CompanyName   string
	Lines         []InvoiceLine
	SubtotalCents int64
	ShippingCents int64
	TaxCents      int64
	DiscountCents int64
	TotalCents    int64
}

type InvoiceGenerator interface {
	Generate(ctx context.Context, req InvoiceRequest) (string, error)
}

// EventPublisher is fire-and-forget. Implementations must not block the
// caller on broker availability.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any)
}

// PaymentWebhookEvent is a provider callback reduced to what the payment
// state machine needs. Relevant is false for event types that carry no
// payment transition.
type PaymentWebhookEvent struct {
	ID       string
	Provider string
	IntentID string
	Status   order.PaymentStatus
	Relevant bool
}

type WebhookParser interface {
	Parse(payload []byte, signature string) (PaymentWebhookEvent, error)
}
