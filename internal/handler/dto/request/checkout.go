package request

import (
	"strings"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
)

type BuyerRequest struct {
	Type        string `json:"type,omitempty" binding:"omitempty,oneof=individual corporate"`
	TaxNumber   string `json:"tax_number,omitempty"`
	TaxOffice   string `json:"tax_office,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type AddressRequest struct {
	FullName   string `json:"full_name" binding:"required,max=200"`
	Phone      string `json:"phone" binding:"required,max=32"`
	Line1      string `json:"line1" binding:"required,max=255"`
	Line2      string `json:"line2,omitempty" binding:"max=255"`
	City       string `json:"city" binding:"required,max=100"`
	District   string `json:"district,omitempty" binding:"max=100"`
	PostalCode string `json:"postal_code,omitempty" binding:"max=20"`
	Country    string `json:"country" binding:"required,len=2"`
}

type CheckoutRequest struct {
	Email           string         `json:"email" binding:"required,email"`
	Region          string         `json:"region,omitempty"`
	Buyer           BuyerRequest   `json:"buyer"`
	ShippingAddress AddressRequest `json:"shipping_address" binding:"required"`
	ShippingCents   int64          `json:"shipping_cents,omitempty" binding:"gte=0"`
	CouponCode      string         `json:"coupon_code,omitempty" binding:"max=64"`
}

func (r CheckoutRequest) ToCommand(idempotencyKey string) commands.CheckoutRequest {
	return commands.CheckoutRequest{
		IdempotencyKey: idempotencyKey,
		Email:          strings.TrimSpace(r.Email),
		Region:         strings.TrimSpace(r.Region),
		Buyer: commands.BuyerInput{
			Type:        r.Buyer.Type,
			TaxNumber:   strings.TrimSpace(r.Buyer.TaxNumber),
			TaxOffice:   strings.TrimSpace(r.Buyer.TaxOffice),
			NationalID:  strings.TrimSpace(r.Buyer.NationalID),
			CompanyName: strings.TrimSpace(r.Buyer.CompanyName),
		},
		ShippingAddress: order.ShippingAddress{
			FullName:   r.ShippingAddress.FullName,
			Phone:      r.ShippingAddress.Phone,
			Line1:      r.ShippingAddress.Line1,
			Line2:      r.ShippingAddress.Line2,
			City:       r.ShippingAddress.City,
			District:   r.ShippingAddress.District,
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    strings.ToUpper(r.ShippingAddress.Country),
		},
		ShippingCents: r.ShippingCents,
		CouponCode:    strings.TrimSpace(r.CouponCode),
	}
}
