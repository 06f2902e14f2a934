package commands

import (
	"context"
	"log/slog"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=fulfillment.go -destination=../../../tests/mock/commands/fulfillment.go -package=commandsmock

type FulfillmentRequest struct {
	Status         order.Status
	TrackingNumber string
}

type FulfillmentCommands interface {
	UpdateFulfillment(ctx context.Context, orderID uuid.UUID, req FulfillmentRequest) error
}

type fulfillmentUseCaseImpl struct {
	uow    shared.UnitOfWork
	cache  shared.Cache
	events EventPublisher
	clock  clock.Clock
}

func NewFulfillmentUseCase(uow shared.UnitOfWork, cache shared.Cache, events EventPublisher, clk clock.Clock) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{uow: uow, cache: cache, events: events, clock: clk}
}

func (uc *fulfillmentUseCaseImpl) UpdateFulfillment(ctx context.Context, orderID uuid.UUID, req FulfillmentRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		switch req.Status {
		case order.StatusShipped:
			err = o.MarkShipped(req.TrackingNumber, now)
		case order.StatusDelivered:
			err = o.MarkDelivered(now)
		default:
			return ErrInvalidTransition
		}
		if err != nil {
			if errs.Is(err, order.ErrTrackingRequired) {
				return errs.Mark(err, ErrInvalidRequest)
			}
			return errs.Mark(err, ErrInvalidTransition)
		}
		return tx.Orders().Save(ctx, tx.DB(), o)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "order fulfillment updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", req.Status.String()))
	invalidateOrder(ctx, uc.cache, orderID)
	uc.events.Publish(ctx, orderID.String(), FulfillmentEvent{
		Type:           EventOrderFulfillment,
		OrderID:        orderID,
		Status:         req.Status.String(),
		TrackingNumber: req.TrackingNumber,
		OccurredAt:     uc.clock.Now(),
	})
	return nil
}
