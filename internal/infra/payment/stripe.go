package payment

import (
	"context"
	"strings"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

const ProviderStripe = "stripe"

type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Cancel(id string, params *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error)
}

type refundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type StripeProvider struct {
	intents intentAPI
	refunds refundAPI
	logger  *zap.Logger
}

func NewStripeProvider(cfg config.StripeConfig, logger *zap.Logger) (*StripeProvider, error) {
	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		return nil, errs.New("stripe: secret key is required")
	}
	sc := client.New(key, nil)
	return newStripeProvider(sc.PaymentIntents, sc.Refunds, logger), nil
}

func newStripeProvider(intents intentAPI, refunds refundAPI, logger *zap.Logger) *StripeProvider {
	return &StripeProvider{intents: intents, refunds: refunds, logger: logger.Named("stripe")}
}

func (p *StripeProvider) CreateOrUpdateIntent(ctx context.Context, req commands.IntentRequest) (commands.IntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount: stripe.Int64(req.AmountCents),
		Metadata: map[string]string{
			"order_id":     req.OrderID.String(),
			"order_number": req.OrderNumber,
		},
	}
	params.Context = ctx
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}

	var (
		intent *stripe.PaymentIntent
		err    error
	)
	if req.ExistingIntentID != nil {
		intent, err = p.intents.Update(*req.ExistingIntentID, params)
		if err != nil {
			return commands.IntentResult{}, errs.Wrap(err, "stripe: update payment intent")
		}
	} else {
		params.Currency = stripe.String(strings.ToLower(req.Currency))
		params.AutomaticPaymentMethods = &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		}
		if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
			params.SetIdempotencyKey(key)
		}
		intent, err = p.intents.New(params)
		if err != nil {
			return commands.IntentResult{}, errs.Wrap(err, "stripe: create payment intent")
		}
	}

	p.logger.Info("payment intent ready",
		zap.String("intent_id", intent.ID),
		zap.String("order_id", req.OrderID.String()),
		zap.String("status", string(intent.Status)),
	)

	return commands.IntentResult{
		Provider:     ProviderStripe,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intentStatus(intent.Status),
	}, nil
}

func (p *StripeProvider) Refund(ctx context.Context, intentID string, amountCents int64, idempotencyKey string) (order.PaymentStatus, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
		Amount:        stripe.Int64(amountCents),
	}
	params.Context = ctx
	if key := strings.TrimSpace(idempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}

	r, err := p.refunds.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: refund payment intent")
	}
	switch r.Status {
	case stripe.RefundStatusSucceeded, stripe.RefundStatusPending:
	default:
		return "", errs.Newf("stripe: refund %s ended in status %s", r.ID, r.Status)
	}

	p.logger.Info("refund created",
		zap.String("intent_id", intentID),
		zap.String("refund_id", r.ID),
		zap.Int64("amount_cents", amountCents),
	)
	return order.PaymentRefunded, nil
}

func (p *StripeProvider) Cancel(ctx context.Context, intentID string) (order.PaymentStatus, error) {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	intent, err := p.intents.Cancel(intentID, params)
	if err != nil {
		return "", errs.Wrap(err, "stripe: cancel payment intent")
	}
	return intentStatus(intent.Status), nil
}

func intentStatus(s stripe.PaymentIntentStatus) order.PaymentStatus {
	switch s {
	case stripe.PaymentIntentStatusRequiresAction:
		return order.PaymentRequiresAction
	case stripe.PaymentIntentStatusProcessing, stripe.PaymentIntentStatusRequiresCapture:
		return order.PaymentProcessing
	case stripe.PaymentIntentStatusSucceeded:
		return order.PaymentSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return order.PaymentCancelled
	default:
		return order.PaymentPending
	}
}
