package worker

import (
	"context"
	"sync"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationSweeper releases reservations whose TTL elapsed without a
// commit, returning the held quantity to available stock.
type ReservationSweeper struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	interval  time.Duration
	batchSize int32
	log       *zap.Logger

	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func NewReservationSweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.WorkerConfig, log *zap.Logger) *ReservationSweeper {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	batch := cfg.SweepBatchSize
	if batch <= 0 {
		batch = 500
	}
	return &ReservationSweeper{
		uow:       uow,
		clock:     clk,
		interval:  interval,
		batchSize: batch,
		log:       log.Named("reservation-sweeper"),
		stopCh:    make(chan struct{}),
	}
}

func (s *ReservationSweeper) Start(ctx context.Context) {
	s.log.Info("starting reservation sweeper", zap.Duration("interval", s.interval))
	s.wg.Add(1)
	go s.loop(ctx)
}

func (s *ReservationSweeper) Stop() {
	s.once.Do(func() {
		s.log.Info("stopping reservation sweeper")
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *ReservationSweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.log.Error("reservation sweep failed", zap.Error(err))
			}
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce releases one batch of expired reservations and reports how many
// rows changed state.
func (s *ReservationSweeper) RunOnce(ctx context.Context) (int, error) {
	var released int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		released = 0
		expired, err := tx.Reservations().ListExpired(ctx, tx.DB(), s.clock.Now(), s.batchSize)
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(expired))
		for i, r := range expired {
			ids[i] = r.ID()
		}
		n, err := tx.Reservations().Release(ctx, tx.DB(), ids)
		if err != nil {
			return err
		}
		released = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if released > 0 {
		s.log.Info("released expired reservations", zap.Int64("count", released))
	}
	return int(released), nil
}
