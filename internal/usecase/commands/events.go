package commands

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderCreated     = "order.created"
	EventPaymentUpdated   = "payment.status_changed"
	EventOrderRefunded    = "order.refunded"
	EventOrderFulfillment = "order.fulfillment_changed"
)

type OrderCreatedEvent struct {
	Type        string    `json:"type"`
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      uuid.UUID `json:"user_id"`
	TotalCents  int64     `json:"total_cents"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PaymentStatusEvent struct {
	Type          string    `json:"type"`
	OrderID       uuid.UUID `json:"order_id"`
	PaymentStatus string    `json:"payment_status"`
	OrderStatus   string    `json:"order_status"`
	RetryCount    int       `json:"retry_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type RefundEvent struct {
	Type             string    `json:"type"`
	OrderID          uuid.UUID `json:"order_id"`
	AmountCents      int64     `json:"amount_cents"`
	AccumulatedCents int64     `json:"accumulated_cents"`
	Full             bool      `json:"full"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type FulfillmentEvent struct {
	Type           string    `json:"type"`
	OrderID        uuid.UUID `json:"order_id"`
	Status         string    `json:"status"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
