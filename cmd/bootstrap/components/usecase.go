package components

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	func(cfg config.Config) commands.PaymentSettings {
		return commands.PaymentSettings{MaxRetries: cfg.Checkout.MaxPaymentRetries}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewPaymentUseCase,
		commands.NewCouponUseCase,
		commands.NewFulfillmentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
