//go:build unit || e2e

package builder

import (
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/legalid"
	domorder "github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	reqdto "github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/dto/request"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	UserID          uuid.UUID
	IdempotencyKey  string
	Amounts         domorder.Amounts
	Items           []domorder.Item
	CouponID        *uuid.UUID
	CouponCode      *string
	Buyer           domorder.Buyer
	ShippingAddress domorder.ShippingAddress
	Now             time.Time
}

// NewOrderBuilder mirrors a cart of two units at 50.00 shipped for 39.90
// with 10% tax.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		UserID:         uuid.New(),
		IdempotencyKey: "idem-key-1",
		Amounts: domorder.Amounts{
			SubtotalCents: 10000,
			ShippingCents: 3990,
			TaxCents:      1399,
		},
		Items: []domorder.Item{{
			ProductID:      uuid.New(),
			ProductName:    "Ceramic Mug",
			Quantity:       2,
			UnitPriceCents: 5000,
			LineTotalCents: 10000,
			TaxCents:       1399,
		}},
		Buyer: domorder.Buyer{
			Email: "buyer@example.com",
			Type:  legalid.BuyerIndividual,
		},
		ShippingAddress: domorder.ShippingAddress{
			FullName:   "Ayse Yilmaz",
			Phone:      "+905551112233",
			Line1:      "Bagdat Cad. 1",
			City:       "Istanbul",
			PostalCode: "34710",
			Country:    "TR",
		},
		Now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() *domorder.Order {
	o, err := domorder.NewOrder(domorder.NewParams{
		Number:          domorder.NewNumber(b.Now, nil),
		UserID:          b.UserID,
		Currency:        "try",
		Region:          "TR",
		IdempotencyKey:  b.IdempotencyKey,
		Buyer:           b.Buyer,
		ShippingAddress: b.ShippingAddress,
		Amounts:         b.Amounts,
		CouponID:        b.CouponID,
		CouponCode:      b.CouponCode,
		Items:           b.Items,
		Now:             b.Now,
	})
	if err != nil {
		panic(err)
	}
	return o
}

// BuildInState builds the order and then overrides snapshot fields, for
// tests that need an order deep into its lifecycle.
func (b *OrderBuilder) BuildInState(mutate func(*domorder.Snapshot)) *domorder.Order {
	s := b.BuildDomain().Snapshot()
	mutate(&s)
	return domorder.Reconstruct(s)
}

func (b *OrderBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Email: b.Buyer.Email,
		Buyer: reqdto.BuyerRequest{Type: string(b.Buyer.Type)},
		ShippingAddress: reqdto.AddressRequest{
			FullName:   b.ShippingAddress.FullName,
			Phone:      b.ShippingAddress.Phone,
			Line1:      b.ShippingAddress.Line1,
			City:       b.ShippingAddress.City,
			PostalCode: b.ShippingAddress.PostalCode,
			Country:    b.ShippingAddress.Country,
		},
	}
}

func (b *OrderBuilder) BuildView(id uuid.UUID) *queries.OrderView {
	items := make([]queries.OrderItemView, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, queries.OrderItemView{
			ProductID:      it.ProductID,
			VariantID:      it.VariantID,
			ProductName:    it.ProductName,
			Quantity:       int32(it.Quantity),
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
			TaxCents:       it.TaxCents,
		})
	}
	total := b.Amounts.SubtotalCents + b.Amounts.ShippingCents + b.Amounts.TaxCents - b.Amounts.DiscountCents
	return &queries.OrderView{
		ID:               id,
		OrderNumber:      "ORD-20250601-0001",
		UserID:           b.UserID,
		IdempotencyKey:   b.IdempotencyKey,
		Status:           string(domorder.StatusPending),
		PaymentStatus:    string(domorder.PaymentPending),
		SubtotalCents:    b.Amounts.SubtotalCents,
		ShippingCents:    b.Amounts.ShippingCents,
		TaxCents:         b.Amounts.TaxCents,
		DiscountCents:    b.Amounts.DiscountCents,
		TotalCents:       total,
		CouponCode:       b.CouponCode,
		Currency:         "try",
		BuyerEmail:       b.Buyer.Email,
		BuyerType:        string(b.Buyer.Type),
		ShippingFullName: b.ShippingAddress.FullName,
		ShippingCity:     b.ShippingAddress.City,
		ShippingCountry:  b.ShippingAddress.Country,
		Items:            items,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}
