package payment

import (
	"encoding/json"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

var ErrInvalidSignature = errs.New("invalid webhook signature")

type StripeWebhookParser struct {
	secret    string
	tolerance time.Duration
}

func NewStripeWebhookParser(cfg config.StripeConfig) *StripeWebhookParser {
	return &StripeWebhookParser{secret: cfg.WebhookSecret, tolerance: webhook.DefaultTolerance}
}

// Parse verifies the Stripe-Signature header and maps the event onto a
// payment status. Events that do not move an order's payment are returned
// with Relevant set to false.
func (p *StripeWebhookParser) Parse(payload []byte, signature string) (commands.PaymentWebhookEvent, error) {
	evt, err := webhook.ConstructEventWithOptions(payload, signature, p.secret, webhook.ConstructEventOptions{
		Tolerance:                p.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return commands.PaymentWebhookEvent{}, errs.Mark(errs.Wrap(err, "stripe webhook"), ErrInvalidSignature)
	}

	out := commands.PaymentWebhookEvent{ID: evt.ID, Provider: ProviderStripe}

	var status order.PaymentStatus
	switch evt.Type {
	case "payment_intent.succeeded":
		status = order.PaymentSucceeded
	case "payment_intent.payment_failed":
		status = order.PaymentFailed
	case "payment_intent.processing":
		status = order.PaymentProcessing
	case "payment_intent.requires_action":
		status = order.PaymentRequiresAction
	case "payment_intent.canceled":
		status = order.PaymentCancelled
	case "charge.refunded":
		var ch stripe.Charge
		if err := json.Unmarshal(evt.Data.Raw, &ch); err != nil {
			return out, errs.Wrap(err, "decode charge")
		}
		// partial refunds are recorded by the refund operation itself
		if !ch.Refunded || ch.PaymentIntent == nil {
			return out, nil
		}
		out.IntentID = ch.PaymentIntent.ID
		out.Status = order.PaymentRefunded
		out.Relevant = true
		return out, nil
	default:
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
		return out, errs.Wrap(err, "decode payment intent")
	}
	out.IntentID = pi.ID
	out.Status = status
	out.Relevant = pi.ID != ""
	return out, nil
}
