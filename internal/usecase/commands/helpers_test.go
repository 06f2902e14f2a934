//go:build unit

package commands_test

import (
	"context"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"
	commandsmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/commands"
	sharedmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// txMocks wires a mock unit of work whose Within runs the callback once
// against a mock Tx exposing every repository.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	users         *sharedmock.MockUserRepository
	carts         *sharedmock.MockCartRepository
	stock         *sharedmock.MockStockRepository
	reservations  *sharedmock.MockReservationRepository
	coupons       *sharedmock.MockCouponRepository
	sessions      *sharedmock.MockCheckoutSessionRepository
	orders        *sharedmock.MockOrderRepository
	rates         *sharedmock.MockRateRepository
	notifications *sharedmock.MockNotificationRepository
	cache         *sharedmock.MockCache
	events        *commandsmock.MockEventPublisher
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		carts:         sharedmock.NewMockCartRepository(ctrl),
		stock:         sharedmock.NewMockStockRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		coupons:       sharedmock.NewMockCouponRepository(ctrl),
		sessions:      sharedmock.NewMockCheckoutSessionRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		rates:         sharedmock.NewMockRateRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		cache:         sharedmock.NewMockCache(ctrl),
		events:        commandsmock.NewMockEventPublisher(ctrl),
	}

	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Carts().Return(m.carts).AnyTimes()
	m.tx.EXPECT().Stock().Return(m.stock).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	m.tx.EXPECT().CheckoutSessions().Return(m.sessions).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Rates().Return(m.rates).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}

// expectInvalidation accepts any number of best-effort cache evictions.
func (m *txMocks) expectInvalidation() {
	m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", pgx.ErrNoRows, infra.KindNotFound)
}

func duplicateErr() error {
	return infra.WrapRepoErr("duplicate key", nil, infra.KindDuplicateKey)
}
