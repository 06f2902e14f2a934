package worker

import (
	"context"
	"sync"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/notification"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"go.uber.org/zap"
)

const (
	baseRetryDelay = 30 * time.Second
	claimLease     = 5 * time.Minute
)

type DispatchResult struct {
	Sent    int
	Retried int
	Failed  int
}

// NotificationDispatcher delivers queued notification jobs. A job that
// fails is re-queued with exponential backoff until maxAttempts, then
// marked failed.
type NotificationDispatcher struct {
	uow         shared.UnitOfWork
	sender      commands.NotificationSender
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int
	log         *zap.Logger

	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	sender commands.NotificationSender,
	clk clock.Clock,
	cfg config.WorkerConfig,
	log *zap.Logger,
) *NotificationDispatcher {
	interval := cfg.NotificationInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	batch := cfg.NotificationBatchSize
	if batch <= 0 {
		batch = 50
	}
	attempts := int(cfg.NotificationMaxAttempts)
	if attempts <= 0 {
		attempts = 5
	}
	return &NotificationDispatcher{
		uow:         uow,
		sender:      sender,
		clock:       clk,
		interval:    interval,
		batchSize:   batch,
		maxAttempts: attempts,
		log:         log.Named("notification-dispatcher"),
		stopCh:      make(chan struct{}),
	}
}

func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.log.Info("starting notification dispatcher", zap.Duration("interval", d.interval))
	d.wg.Add(1)
	go d.loop(ctx)
}

func (d *NotificationDispatcher) Stop() {
	d.once.Do(func() {
		d.log.Info("stopping notification dispatcher")
		close(d.stopCh)
	})
	d.wg.Wait()
}

func (d *NotificationDispatcher) loop(ctx context.Context) {
	defer d.wg.Done()
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := d.RunOnce(ctx); err != nil {
				d.log.Error("notification dispatch failed", zap.Error(err))
			}
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce leases one batch of due jobs in a short transaction, delivers them
// with no transaction open and records each outcome separately. A job whose
// outcome cannot be recorded is retried after its lease expires.
func (d *NotificationDispatcher) RunOnce(ctx context.Context) (DispatchResult, error) {
	now := d.clock.Now()
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, tx.DB(), now, now.Add(claimLease), d.batchSize)
		return err
	})
	if err != nil {
		return DispatchResult{}, err
	}

	var res DispatchResult
	var recordErr error
	for _, job := range jobs {
		status, runAt, lastErr := d.deliver(ctx, job, now)
		err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastErr, runAt)
		})
		if err != nil {
			d.log.Error("notification outcome not recorded",
				zap.String("job_id", job.ID.String()),
				zap.String("status", status),
				zap.Error(err),
			)
			if recordErr == nil {
				recordErr = err
			}
			continue
		}
		switch status {
		case shared.NotificationStatusSent:
			res.Sent++
		case shared.NotificationStatusQueued:
			res.Retried++
		default:
			res.Failed++
		}
	}
	return res, recordErr
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job shared.NotificationJob, now time.Time) (string, time.Time, *string) {
	msg, err := notification.Render(job)
	if err != nil {
		d.log.Error("notification job cannot be rendered",
			zap.String("job_id", job.ID.String()),
			zap.String("kind", job.Kind),
			zap.Error(err),
		)
		reason := err.Error()
		return shared.NotificationStatusFailed, now, &reason
	}

	if err := d.sender.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		reason := err.Error()
		attempt := job.Attempts + 1
		if attempt >= d.maxAttempts {
			d.log.Error("notification delivery gave up",
				zap.String("job_id", job.ID.String()),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			return shared.NotificationStatusFailed, now, &reason
		}
		d.log.Warn("notification delivery failed, will retry",
			zap.String("job_id", job.ID.String()),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return shared.NotificationStatusQueued, now.Add(backoff(attempt)), &reason
	}

	return shared.NotificationStatusSent, now, nil
}

func backoff(attempt int) time.Duration {
	if attempt > 10 {
		attempt = 10
	}
	return baseRetryDelay << (attempt - 1)
}
