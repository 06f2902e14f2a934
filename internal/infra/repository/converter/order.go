package converter

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/legalid"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	s := o.Snapshot()
	return sqlc.CreateOrderParams{
		ID:                 s.ID,
		OrderNumber:        s.Number,
		UserID:             s.UserID,
		Status:             s.Status.String(),
		PaymentStatus:      s.PaymentStatus.String(),
		SubtotalCents:      s.Amounts.SubtotalCents,
		ShippingCents:      s.Amounts.ShippingCents,
		TaxCents:           s.Amounts.TaxCents,
		DiscountCents:      s.Amounts.DiscountCents,
		TotalCents:         s.TotalCents,
		CouponID:           pgconv.UUIDPtrToPgtype(s.CouponID),
		CouponCode:         pgconv.StringPtrToPgtype(s.CouponCode),
		Currency:           s.Currency,
		Region:             s.Region,
		IdempotencyKey:     s.IdempotencyKey,
		BuyerEmail:         s.Buyer.Email,
		BuyerType:          string(s.Buyer.Type),
		TaxNumber:          pgconv.OptionalString(s.Buyer.TaxNumber),
		TaxOffice:          pgconv.OptionalString(s.Buyer.TaxOffice),
		NationalID:         pgconv.OptionalString(s.Buyer.NationalID),
		CompanyName:        pgconv.OptionalString(s.Buyer.Company),
		ShippingFullName:   s.ShippingAddress.FullName,
		ShippingPhone:      s.ShippingAddress.Phone,
		ShippingLine1:      s.ShippingAddress.Line1,
		ShippingLine2:      pgconv.OptionalString(s.ShippingAddress.Line2),
		ShippingCity:       s.ShippingAddress.City,
		ShippingDistrict:   pgconv.OptionalString(s.ShippingAddress.District),
		ShippingPostalCode: s.ShippingAddress.PostalCode,
		ShippingCountry:    s.ShippingAddress.Country,
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func OrderItemsToParams(o *order.Order) []sqlc.CreateOrderItemParams {
	items := o.Items()
	params := make([]sqlc.CreateOrderItemParams, len(items))
	for i, it := range items {
		params[i] = sqlc.CreateOrderItemParams{
			ID:             it.ID,
			OrderID:        o.ID(),
			Position:       int32(i), // #nosec G115 -- bounded by cart size
			ProductID:      it.ProductID,
			VariantID:      pgconv.UUIDPtrToPgtype(it.VariantID),
			ProductName:    it.ProductName,
			Quantity:       int32(it.Quantity), // #nosec G115 -- bounded by stock column
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
			TaxCents:       it.TaxCents,
		}
	}
	return params
}

func OrderToStateParams(o *order.Order) sqlc.UpdateOrderStateParams {
	s := o.Snapshot()
	return sqlc.UpdateOrderStateParams{
		ID:                s.ID,
		Status:            s.Status.String(),
		PaymentStatus:     s.PaymentStatus.String(),
		PaymentProvider:   pgconv.StringPtrToPgtype(s.PaymentProvider),
		PaymentIntentID:   pgconv.StringPtrToPgtype(s.PaymentIntentID),
		PaymentRetryCount: int32(s.PaymentRetryCount), // #nosec G115 -- capped by max retries
		DiscountCents:     s.Amounts.DiscountCents,
		TotalCents:        s.TotalCents,
		RefundCents:       s.RefundCents,
		RefundRequested:   s.RefundRequested,
		Refunded:          s.Refunded,
		CouponID:          pgconv.UUIDPtrToPgtype(s.CouponID),
		CouponCode:        pgconv.StringPtrToPgtype(s.CouponCode),
		TrackingNumber:    pgconv.StringPtrToPgtype(s.TrackingNumber),
		InvoiceUrl:        pgconv.StringPtrToPgtype(s.InvoiceURL),
		PaidAt:            pgconv.TimePtrToPgtype(s.PaidAt),
		ShippedAt:         pgconv.TimePtrToPgtype(s.ShippedAt),
		DeliveredAt:       pgconv.TimePtrToPgtype(s.DeliveredAt),
		UpdatedAt:         pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func OrderToDomain(row sqlc.Orders, itemRows []sqlc.OrderItems) *order.Order {
	items := make([]order.Item, len(itemRows))
	for i, it := range itemRows {
		items[i] = order.Item{
			ID:             it.ID,
			ProductID:      it.ProductID,
			VariantID:      pgconv.UUIDPtrFromPgtype(it.VariantID),
			ProductName:    it.ProductName,
			Quantity:       int(it.Quantity),
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
			TaxCents:       it.TaxCents,
		}
	}

	return order.Reconstruct(order.Snapshot{
		ID:                row.ID,
		Number:            row.OrderNumber,
		UserID:            row.UserID,
		Status:            order.Status(row.Status),
		PaymentStatus:     order.PaymentStatus(row.PaymentStatus),
		PaymentProvider:   pgconv.StringPtrFromPgtype(row.PaymentProvider),
		PaymentIntentID:   pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		PaymentRetryCount: int(row.PaymentRetryCount),
		Amounts: order.Amounts{
			SubtotalCents: row.SubtotalCents,
			ShippingCents: row.ShippingCents,
			TaxCents:      row.TaxCents,
			DiscountCents: row.DiscountCents,
		},
		TotalCents:      row.TotalCents,
		RefundCents:     row.RefundCents,
		RefundRequested: row.RefundRequested,
		Refunded:        row.Refunded,
		CouponID:        pgconv.UUIDPtrFromPgtype(row.CouponID),
		CouponCode:      pgconv.StringPtrFromPgtype(row.CouponCode),
		Currency:        row.Currency,
		Region:          row.Region,
		IdempotencyKey:  row.IdempotencyKey,
		Buyer: order.Buyer{
			Email:      row.BuyerEmail,
			Type:       legalid.BuyerType(row.BuyerType),
			TaxNumber:  row.TaxNumber.String,
			TaxOffice:  row.TaxOffice.String,
			NationalID: row.NationalID.String,
			Company:    row.CompanyName.String,
		},
		ShippingAddress: order.ShippingAddress{
			FullName:   row.ShippingFullName,
			Phone:      row.ShippingPhone,
			Line1:      row.ShippingLine1,
			Line2:      row.ShippingLine2.String,
			City:       row.ShippingCity,
			District:   row.ShippingDistrict.String,
			PostalCode: row.ShippingPostalCode,
			Country:    row.ShippingCountry,
		},
		TrackingNumber: pgconv.StringPtrFromPgtype(row.TrackingNumber),
		InvoiceURL:     pgconv.StringPtrFromPgtype(row.InvoiceUrl),
		Items:          items,
		PaidAt:         pgconv.TimePtrFromPgtype(row.PaidAt),
		ShippedAt:      pgconv.TimePtrFromPgtype(row.ShippedAt),
		DeliveredAt:    pgconv.TimePtrFromPgtype(row.DeliveredAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
