package components

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/cache"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/invoice"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/messaging"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/notification"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/payment"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const webhookDedupService = "stripe-webhook"

// InfraModule groups the outbound adapters. PaymentModule is separate so
// tests can swap the provider without touching the rest.
var InfraModule = fx.Module("infra",
	CacheModule,
	MessagingModule,
	NotificationModule,
	InvoiceModule,
)

var CacheModule = fx.Module("infra/cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewRedisCache,
			fx.As(new(shared.Cache)),
		),
		fx.Annotate(
			NewWebhookDeduplicator,
			fx.As(new(shared.Deduplicator)),
		),
	),
)

var MessagingModule = fx.Module("infra/messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

var PaymentModule = fx.Module("infra/payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentProvider,
			fx.As(new(commands.PaymentProvider)),
		),
		fx.Annotate(
			NewWebhookParser,
			fx.As(new(commands.WebhookParser)),
		),
	),
)

var NotificationModule = fx.Module("infra/notification",
	fx.Provide(
		fx.Annotate(
			NewNotificationSender,
			fx.As(new(commands.NotificationSender)),
		),
	),
)

var InvoiceModule = fx.Module("infra/invoice",
	fx.Provide(
		fx.Annotate(
			NewInvoiceClient,
			fx.As(new(commands.InvoiceGenerator)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*redis.Client, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing redis client")
			return client.Close()
		},
	})
	return client, nil
}

func NewRedisCache(client *redis.Client, cfg config.Config) *cache.RedisCache {
	return cache.NewRedisCache(client, cfg.Redis)
}

func NewWebhookDeduplicator(client *redis.Client) *cache.RedisDeduplicator {
	return cache.NewRedisDeduplicator(client, webhookDedupService)
}

// NewEventPublisher returns the Kafka publisher when enabled; otherwise
// events are only logged.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) commands.EventPublisher {
	if !cfg.Kafka.Enabled {
		return messaging.NewNoopPublisher(logger)
	}

	p := messaging.NewKafkaPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return p.Stop(ctx)
		},
	})
	return p
}

func NewPaymentProvider(cfg config.Config, logger *zap.Logger) (*payment.StripeProvider, error) {
	return payment.NewStripeProvider(cfg.Stripe, logger)
}

func NewWebhookParser(cfg config.Config) *payment.StripeWebhookParser {
	return payment.NewStripeWebhookParser(cfg.Stripe)
}

func NewNotificationSender(cfg config.Config, logger *zap.Logger) *notification.SMTPSender {
	return notification.NewSMTPSender(cfg.SMTP, logger)
}

func NewInvoiceClient(cfg config.Config) *invoice.Client {
	return invoice.NewClient(cfg.Invoice)
}
