package bootstrap

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.InfraModule,
	components.PaymentModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
