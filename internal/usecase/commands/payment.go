package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock

type PaymentIntent struct {
	OrderID      uuid.UUID
	Provider     string
	IntentID     string
	ClientSecret string
	Status       order.PaymentStatus
	AmountCents  int64
	Currency     string
}

type PaymentCommands interface {
	CreatePaymentIntent(ctx context.Context, orderID uuid.UUID, requesterID *uuid.UUID, idempotencyKey string) (*PaymentIntent, error)
	// UpdatePaymentStatus reports false when no order holds intentID.
	UpdatePaymentStatus(ctx context.Context, intentID string, status order.PaymentStatus, provider string) (bool, error)
	// RefundPayment refunds amount, or the remaining total when amount is nil.
	// It reports whether the order is now fully refunded.
	RefundPayment(ctx context.Context, orderID uuid.UUID, amount *int64) (bool, error)
}

type PaymentSettings struct {
	MaxRetries int
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider PaymentProvider
	invoices InvoiceGenerator
	events   EventPublisher
	cache    shared.Cache
	settings PaymentSettings
	clock    clock.Clock
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	provider PaymentProvider,
	invoices InvoiceGenerator,
	events EventPublisher,
	cache shared.Cache,
	settings PaymentSettings,
	clk clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:      uow,
		provider: provider,
		invoices: invoices,
		events:   events,
		cache:    cache,
		settings: settings,
		clock:    clk,
	}
}

func (uc *paymentUseCaseImpl) CreatePaymentIntent(ctx context.Context, orderID uuid.UUID, requesterID *uuid.UUID, idempotencyKey string) (intent *PaymentIntent, err error) {
	ctx, span := tracer.Start(ctx, "CreatePaymentIntent")
	span.SetAttributes(attribute.String("order.id", orderID.String()))
	defer func() { endSpan(span, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, terr := lockOrder(ctx, tx, orderID)
		if terr != nil {
			return terr
		}
		if !o.CanBeAccessedBy(requesterID, idempotencyKey) {
			return ErrOrderAccess
		}
		if terr = o.EnsurePayable(); terr != nil {
			if errs.Is(terr, order.ErrPaymentPermanentlyFailed) {
				return errs.Mark(terr, ErrPaymentPermanentlyFailed)
			}
			return errs.Mark(terr, ErrOrderNotPayable)
		}

		existingID, providerKey := o.NextIntent()
		res, terr := uc.provider.CreateOrUpdateIntent(ctx, IntentRequest{
			OrderID:          o.ID(),
			OrderNumber:      o.Number(),
			AmountCents:      o.TotalCents(),
			Currency:         o.Currency(),
			Email:            o.Buyer().Email,
			ExistingIntentID: existingID,
			IdempotencyKey:   providerKey,
		})
		if terr != nil {
			return errs.Mark(terr, ErrPaymentProvider)
		}

		now := uc.clock.Now()
		o.AttachIntent(res.Provider, res.IntentID, now)
		if res.Status != o.PaymentStatus() && res.Status != order.PaymentFailed {
			if _, terr = o.ApplyPaymentStatus(res.Status, uc.settings.MaxRetries, now); terr != nil {
				return terr
			}
		}
		if terr = tx.Orders().Save(ctx, tx.DB(), o); terr != nil {
			return terr
		}
		if terr = tx.CheckoutSessions().SetPaymentIntent(ctx, tx.DB(), o.ID(), res.IntentID, o.TotalCents()); terr != nil {
			return terr
		}

		intent = &PaymentIntent{
			OrderID:      o.ID(),
			Provider:     res.Provider,
			IntentID:     res.IntentID,
			ClientSecret: res.ClientSecret,
			Status:       o.PaymentStatus(),
			AmountCents:  o.TotalCents(),
			Currency:     o.Currency(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateOrder(ctx, uc.cache, orderID)
	return intent, nil
}

func (uc *paymentUseCaseImpl) UpdatePaymentStatus(ctx context.Context, intentID string, status order.PaymentStatus, provider string) (found bool, err error) {
	ctx, span := tracer.Start(ctx, "UpdatePaymentStatus")
	span.SetAttributes(
		attribute.String("payment.intent_id", intentID),
		attribute.String("payment.status", status.String()),
	)
	defer func() { endSpan(span, err) }()

	if !status.IsValid() {
		return false, errs.Mark(order.ErrInvalidPaymentStatus, ErrInvalidRequest)
	}

	var (
		updated    *order.Order
		transition order.PaymentTransition
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, updated = false, nil
		o, terr := tx.Orders().LockByPaymentIntent(ctx, tx.DB(), intentID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return nil
			}
			return terr
		}
		found = true
		if p := o.PaymentProvider(); p != nil && provider != "" && *p != provider {
			slog.WarnContext(ctx, "payment status from unexpected provider ignored",
				slog.String("intent_id", intentID),
				slog.String("provider", provider))
			return nil
		}

		now := uc.clock.Now()
		transition, terr = o.ApplyPaymentStatus(status, uc.settings.MaxRetries, now)
		if terr != nil {
			return terr
		}
		if !transition.Changed {
			return nil
		}
		if terr = tx.Orders().Save(ctx, tx.DB(), o); terr != nil {
			return terr
		}
		if transition.BecameSucceeded {
			if terr = enqueueNotification(ctx, tx, shared.NotificationKindReceipt, EventPaymentUpdated, o, now); terr != nil {
				return terr
			}
		}
		updated = o
		return nil
	})
	if err != nil {
		return false, err
	}
	if !found {
		slog.WarnContext(ctx, "payment status for unknown intent", slog.String("intent_id", intentID))
		return false, nil
	}
	if updated == nil {
		return true, nil
	}

	slog.InfoContext(ctx, "payment status updated",
		slog.String("order_id", updated.ID().String()),
		slog.String("payment_status", updated.PaymentStatus().String()),
		slog.Int("retry_count", updated.PaymentRetryCount()))

	if transition.BecameSucceeded && updated.InvoiceURL() == nil {
		uc.attachInvoice(ctx, updated)
	}
	invalidateOrder(ctx, uc.cache, updated.ID())
	uc.events.Publish(ctx, updated.ID().String(), PaymentStatusEvent{
		Type:          EventPaymentUpdated,
		OrderID:       updated.ID(),
		PaymentStatus: updated.PaymentStatus().String(),
		OrderStatus:   updated.Status().String(),
		RetryCount:    updated.PaymentRetryCount(),
		OccurredAt:    updated.UpdatedAt(),
	})
	return true, nil
}

// attachInvoice is best-effort: the payment is already recorded, so a
// failing invoice service is only logged.
func (uc *paymentUseCaseImpl) attachInvoice(ctx context.Context, o *order.Order) {
	url, err := uc.invoices.Generate(ctx, invoiceRequest(o))
	if err != nil {
		slog.WarnContext(ctx, "invoice generation failed",
			slog.String("order_id", o.ID().String()),
			slog.String("error", err.Error()))
		return
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, terr := tx.Orders().LockByID(ctx, tx.DB(), o.ID())
		if terr != nil {
			return terr
		}
		if locked.InvoiceURL() != nil {
			return nil
		}
		locked.AttachInvoice(url, uc.clock.Now())
		return tx.Orders().Save(ctx, tx.DB(), locked)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to store invoice url",
			slog.String("order_id", o.ID().String()),
			slog.String("error", err.Error()))
	}
}

func (uc *paymentUseCaseImpl) RefundPayment(ctx context.Context, orderID uuid.UUID, amount *int64) (full bool, err error) {
	ctx, span := tracer.Start(ctx, "RefundPayment")
	span.SetAttributes(attribute.String("order.id", orderID.String()))
	defer func() { endSpan(span, err) }()

	if amount != nil && *amount <= 0 {
		return false, ErrInvalidRefundAmount
	}

	var plan order.RefundPlan
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, terr := lockOrder(ctx, tx, orderID)
		if terr != nil {
			return terr
		}
		plan, terr = o.PlanRefund(amount)
		if terr != nil {
			return errs.Mark(terr, ErrRefundRejected)
		}

		key := fmt.Sprintf("refund-%s-%d", o.ID(), plan.AccumulatedCents)
		status, terr := uc.provider.Refund(ctx, *o.PaymentIntentID(), plan.AmountCents, key)
		if terr != nil {
			return errs.Mark(terr, ErrPaymentProvider)
		}

		now := uc.clock.Now()
		o.RecordRefund(plan, now)
		if plan.Full && status == order.PaymentRefunded {
			if _, terr = o.ApplyPaymentStatus(order.PaymentRefunded, uc.settings.MaxRetries, now); terr != nil {
				return terr
			}
		}
		return tx.Orders().Save(ctx, tx.DB(), o)
	})
	if err != nil {
		return false, err
	}

	invalidateOrder(ctx, uc.cache, orderID)
	uc.events.Publish(ctx, orderID.String(), RefundEvent{
		Type:             EventOrderRefunded,
		OrderID:          orderID,
		AmountCents:      plan.AmountCents,
		AccumulatedCents: plan.AccumulatedCents,
		Full:             plan.Full,
		OccurredAt:       uc.clock.Now(),
	})
	return plan.Full, nil
}

func lockOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, error) {
	o, err := tx.Orders().LockByID(ctx, tx.DB(), orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func invalidateOrder(ctx context.Context, cache shared.Cache, orderID uuid.UUID) {
	if err := cache.Invalidate(ctx, shared.OrderCacheKey(orderID)); err != nil {
		slog.WarnContext(ctx, "order cache invalidation failed",
			slog.String("order_id", orderID.String()),
			slog.String("error", err.Error()))
	}
}

func invoiceRequest(o *order.Order) InvoiceRequest {
	b := o.Buyer()
	a := o.Amounts()
	lines := make([]InvoiceLine, len(o.Items()))
	for i, it := range o.Items() {
		lines[i] = InvoiceLine{
			Name:           it.ProductName,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TaxCents:       it.TaxCents,
		}
	}
	return InvoiceRequest{
		OrderID:       o.ID(),
		OrderNumber:   o.Number(),
		Currency:      o.Currency(),
		BuyerEmail:    b.Email,
		BuyerType:     string(b.Type),
		TaxNumber:     b.TaxNumber,
		TaxOffice:     b.TaxOffice,
		NationalID:    b.NationalID,
		CompanyName:   b.Company,
		Lines:         lines,
		SubtotalCents: a.SubtotalCents,
		ShippingCents: a.ShippingCents,
		TaxCents:      a.TaxCents,
		DiscountCents: a.DiscountCents,
		TotalCents:    o.TotalCents(),
	}
}
