package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleCustomer = "customer"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsGuest  bool      `json:"is_guest"`
	IsActive bool      `json:"is_active"`
}

type OrderItemView struct {
	ProductID      uuid.UUID  `json:"product_id"`
	VariantID      *uuid.UUID `json:"variant_id,omitempty"`
	ProductName    string     `json:"product_name"`
	Quantity       int32      `json:"quantity"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	LineTotalCents int64      `json:"line_total_cents"`
	TaxCents       int64      `json:"tax_cents"`
}

// OrderView is the cached read model of an order. IdempotencyKey is kept
// for guest access checks and must not be rendered.
type OrderView struct {
	ID                uuid.UUID       `json:"id"`
	OrderNumber       string          `json:"order_number"`
	UserID            uuid.UUID       `json:"user_id"`
	IdempotencyKey    string          `json:"idempotency_key"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	PaymentIntentID   *string         `json:"payment_intent_id,omitempty"`
	PaymentRetryCount int32           `json:"payment_retry_count"`
	SubtotalCents     int64           `json:"subtotal_cents"`
	ShippingCents     int64           `json:"shipping_cents"`
	TaxCents          int64           `json:"tax_cents"`
	DiscountCents     int64           `json:"discount_cents"`
	TotalCents        int64           `json:"total_cents"`
	RefundCents       int64           `json:"refund_cents"`
	Refunded          bool            `json:"refunded"`
	CouponCode        *string         `json:"coupon_code,omitempty"`
	Currency          string          `json:"currency"`
	BuyerEmail        string          `json:"buyer_email"`
	BuyerType         string          `json:"buyer_type"`
	ShippingFullName  string          `json:"shipping_full_name"`
	ShippingCity      string          `json:"shipping_city"`
	ShippingCountry   string          `json:"shipping_country"`
	TrackingNumber    *string         `json:"tracking_number,omitempty"`
	InvoiceURL        *string         `json:"invoice_url,omitempty"`
	Items             []OrderItemView `json:"items"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalCents    int64     `json:"total_cents"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}
