package components

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/worker"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReservationSweeper,
		NewNotificationDispatcher,
	),
	fx.Invoke(
		startSweeper,
		startDispatcher,
	),
)

func NewReservationSweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *zap.Logger) *worker.ReservationSweeper {
	return worker.NewReservationSweeper(uow, clk, cfg.Worker, logger)
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	sender commands.NotificationSender,
	clk clock.Clock,
	cfg config.Config,
	logger *zap.Logger,
) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(uow, sender, clk, cfg.Worker, logger)
}

// Workers outlive the OnStart context, so they get their own.
func startSweeper(lc fx.Lifecycle, s *worker.ReservationSweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			s.Stop()
			return nil
		},
	})
}

func startDispatcher(lc fx.Lifecycle, d *worker.NotificationDispatcher) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			d.Stop()
			return nil
		},
	})
}
