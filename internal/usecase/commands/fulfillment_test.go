//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpdateFulfillment(t *testing.T) {
	inStatus := func(st order.Status) *order.Order {
		return builder.NewOrderBuilder().BuildInState(func(snap *order.Snapshot) {
			snap.Status = st
			snap.PaymentStatus = order.PaymentSucceeded
		})
	}

	testCases := []struct {
		name       string
		order      *order.Order
		req        commands.FulfillmentRequest
		wantErr    error
		wantStatus order.Status
	}{
		{
			name:       "processing to shipped",
			order:      inStatus(order.StatusProcessing),
			req:        commands.FulfillmentRequest{Status: order.StatusShipped, TrackingNumber: "TRK-1"},
			wantStatus: order.StatusShipped,
		},
		{
			name:       "shipped to delivered",
			order:      inStatus(order.StatusShipped),
			req:        commands.FulfillmentRequest{Status: order.StatusDelivered},
			wantStatus: order.StatusDelivered,
		},
		{
			name:    "shipping needs tracking number",
			order:   inStatus(order.StatusProcessing),
			req:     commands.FulfillmentRequest{Status: order.StatusShipped},
			wantErr: commands.ErrInvalidRequest,
		},
		{
			name:    "unpaid order cannot ship",
			order:   builder.NewOrderBuilder().BuildDomain(),
			req:     commands.FulfillmentRequest{Status: order.StatusShipped, TrackingNumber: "TRK-1"},
			wantErr: commands.ErrInvalidTransition,
		},
		{
			name:    "cannot deliver before shipping",
			order:   inStatus(order.StatusProcessing),
			req:     commands.FulfillmentRequest{Status: order.StatusDelivered},
			wantErr: commands.ErrInvalidTransition,
		},
		{
			name:    "target status not a fulfillment step",
			order:   inStatus(order.StatusProcessing),
			req:     commands.FulfillmentRequest{Status: order.StatusCancelled},
			wantErr: commands.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTxMocks(ctrl)
			m.expectInvalidation()
			uc := commands.NewFulfillmentUseCase(m.uow, m.cache, m.events, clock.NewMockClock(testNow))

			m.orders.EXPECT().LockByID(gomock.Any(), gomock.Any(), tc.order.ID()).Return(tc.order, nil)
			if tc.wantErr == nil {
				m.orders.EXPECT().Save(gomock.Any(), gomock.Any(), tc.order).Return(nil)
				m.events.EXPECT().Publish(gomock.Any(), tc.order.ID().String(), gomock.AssignableToTypeOf(commands.FulfillmentEvent{}))
			}

			err := uc.UpdateFulfillment(context.Background(), tc.order.ID(), tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, tc.order.Status())
		})
	}
}
