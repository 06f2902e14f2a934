package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	StripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 64 << 10
)

type WebhookHandler struct {
	parser   commands.WebhookParser
	dedup    shared.Deduplicator
	payments commands.PaymentCommands
	cfg      config.RedisConfig
}

func NewWebhookHandler(
	parser commands.WebhookParser,
	dedup shared.Deduplicator,
	payments commands.PaymentCommands,
	cfg config.Config,
) *WebhookHandler {
	return &WebhookHandler{parser: parser, dedup: dedup, payments: payments, cfg: cfg.Redis}
}

// @Summary Stripe webhook
// @Description Applies payment intent events. Deliveries are deduplicated by event id; a 5xx asks Stripe to retry.
// @Tags webhooks
// @Accept json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		abortBadRequest(c, err, "Unreadable body")
		return
	}

	event, err := h.parser.Parse(payload, c.GetHeader(StripeSignatureHeader))
	if err != nil {
		slog.WarnContext(ctx, "rejected webhook", slog.String("error", err.Error()))
		abortBadRequest(c, err, "Invalid signature")
		return
	}
	if !event.Relevant {
		ack(c)
		return
	}

	first, err := h.dedup.FirstSeen(ctx, event.ID, h.cfg.DedupTTL)
	switch {
	case err != nil:
		// Status updates are idempotent, so a dedup outage only costs a repeat.
		slog.WarnContext(ctx, "webhook dedup unavailable", slog.String("event_id", event.ID), slog.String("error", err.Error()))
	case !first:
		slog.InfoContext(ctx, "duplicate webhook ignored", slog.String("event_id", event.ID))
		ack(c)
		return
	}

	found, err := h.payments.UpdatePaymentStatus(ctx, event.IntentID, event.Status, event.Provider)
	if err != nil {
		if ferr := h.dedup.Forget(ctx, event.ID); ferr != nil {
			slog.ErrorContext(ctx, "failed to release webhook claim", slog.String("event_id", event.ID), slog.String("error", ferr.Error()))
		}
		abortWithUseCaseError(c, err)
		return
	}
	if !found {
		slog.WarnContext(ctx, "webhook for unknown payment intent",
			slog.String("event_id", event.ID),
			slog.String("intent_id", event.IntentID))
	}
	ack(c)
}

func ack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"received": true})
}
