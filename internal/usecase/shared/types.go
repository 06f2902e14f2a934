package shared

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutSessionSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	IdempotencyKey  string
	OrderID         *uuid.UUID
	PaymentIntentID *string
	TotalCents      *int64
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int
	LastError *string
	RunAt     time.Time
}

const (
	NotificationKindOrderCreated = "order_created"
	NotificationKindReceipt      = "payment_receipt"
)

// NotificationPayload is the JSON body of a notification job.
type NotificationPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
	TotalCents  int64     `json:"total_cents"`
	Currency    string    `json:"currency"`
}
