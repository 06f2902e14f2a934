package response

import (
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ProductID      uuid.UUID  `json:"product_id"`
	VariantID      *uuid.UUID `json:"variant_id,omitempty"`
	ProductName    string     `json:"product_name"`
	Quantity       int32      `json:"quantity"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	LineTotalCents int64      `json:"line_total_cents"`
	TaxCents       int64      `json:"tax_cents"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	OrderNumber       string              `json:"order_number"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	PaymentRetryCount int32               `json:"payment_retry_count"`
	SubtotalCents     int64               `json:"subtotal_cents"`
	ShippingCents     int64               `json:"shipping_cents"`
	TaxCents          int64               `json:"tax_cents"`
	DiscountCents     int64               `json:"discount_cents"`
	TotalCents        int64               `json:"total_cents"`
	RefundCents       int64               `json:"refund_cents"`
	Refunded          bool                `json:"refunded"`
	CouponCode        *string             `json:"coupon_code,omitempty"`
	Currency          string              `json:"currency"`
	BuyerEmail        string              `json:"buyer_email"`
	BuyerType         string              `json:"buyer_type"`
	ShippingFullName  string              `json:"shipping_full_name"`
	ShippingCity      string              `json:"shipping_city"`
	ShippingCountry   string              `json:"shipping_country"`
	TrackingNumber    *string             `json:"tracking_number,omitempty"`
	InvoiceURL        *string             `json:"invoice_url,omitempty"`
	Items             []OrderItemResponse `json:"items"`
	PaidAt            *time.Time          `json:"paid_at,omitempty"`
	ShippedAt         *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type OrderListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalCents    int64     `json:"total_cents"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderListItemResponse `json:"orders"`
	Next   string                  `json:"next,omitempty"`
}

// FromOrderView drops fields that only serve access checks.
func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	out := &OrderResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []OrderItemResponse{}
	}
	return out, nil
}

func FromOrderList(items []*queries.OrderListItem, next *queries.Cursor) (*OrderListResponse, error) {
	out := &OrderListResponse{Orders: make([]OrderListItemResponse, 0, len(items))}
	if err := copier.Copy(&out.Orders, items); err != nil {
		return nil, err
	}
	if next != nil {
		out.Next = next.After
	}
	return out, nil
}
