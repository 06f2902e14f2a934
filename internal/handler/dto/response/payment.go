package response

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/coupon"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentIntentResponse struct {
	OrderID      uuid.UUID `json:"order_id"`
	Provider     string    `json:"provider"`
	IntentID     string    `json:"intent_id"`
	ClientSecret string    `json:"client_secret"`
	Status       string    `json:"status"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
}

func FromPaymentIntent(p *commands.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		OrderID:      p.OrderID,
		Provider:     p.Provider,
		IntentID:     p.IntentID,
		ClientSecret: p.ClientSecret,
		Status:       string(p.Status),
		AmountCents:  p.AmountCents,
		Currency:     p.Currency,
	}
}

type RefundResponse struct {
	OrderID       uuid.UUID `json:"order_id"`
	FullyRefunded bool      `json:"fully_refunded"`
}

type CouponApplicationResponse struct {
	OrderID               uuid.UUID `json:"order_id"`
	Code                  string    `json:"code"`
	DiscountCents         int64     `json:"discount_cents"`
	TotalCents            int64     `json:"total_cents"`
	IntentRefreshRequired bool      `json:"intent_refresh_required"`
}

func FromCouponApplication(a *commands.CouponApplication) CouponApplicationResponse {
	return CouponApplicationResponse{
		OrderID:               a.OrderID,
		Code:                  a.Code,
		DiscountCents:         a.DiscountCents,
		TotalCents:            a.TotalCents,
		IntentRefreshRequired: a.IntentRefreshRequired,
	}
}

type CouponPreviewResponse struct {
	Valid         bool   `json:"valid"`
	Message       string `json:"message"`
	DiscountCents int64  `json:"discount_cents"`
}

func FromEvaluation(e coupon.Evaluation) CouponPreviewResponse {
	return CouponPreviewResponse{Valid: e.Valid, Message: e.Message, DiscountCents: e.DiscountCents}
}
