package request

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
)

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

type PreviewCouponRequest struct {
	Code        string `json:"code" binding:"required,max=64"`
	AmountCents int64  `json:"amount_cents" binding:"gt=0"`
}

// RefundRequest refunds the remaining total when AmountCents is omitted.
type RefundRequest struct {
	AmountCents *int64 `json:"amount_cents,omitempty"`
}

type FulfillmentRequest struct {
	Status         string `json:"status" binding:"required,oneof=shipped delivered"`
	TrackingNumber string `json:"tracking_number,omitempty" binding:"max=100"`
}

func (r FulfillmentRequest) ToCommand() commands.FulfillmentRequest {
	return commands.FulfillmentRequest{
		Status:         order.Status(r.Status),
		TrackingNumber: r.TrackingNumber,
	}
}

type ListOrdersQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
