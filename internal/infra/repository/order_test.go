//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository/converter"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"
	repositorymock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderWriteQueries, *order.Order, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: order and items inserted",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, converter.OrderToCreateParams(o)).Return(nil)
				mock.EXPECT().CreateOrderItem(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
						assert.Equal(t, o.ID(), arg.OrderID)
						assert.Equal(t, int32(0), arg.Position)
						assert.Equal(t, int64(1399), arg.TaxCents)
						return nil
					})
			},
		},
		{
			name: "error: duplicate order number",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: item insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateOrderItem(ctx, tx, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			o := builder.NewOrderBuilder().BuildDomain()
			tc.setupMock(mockQueries, o, mockDB)

			err := repo.Create(ctx, mockDB, o)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Lock Order Tests
// =============================================================================

func TestOrderRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	original := builder.NewOrderBuilder().BuildDomain()

	t.Run("success: row and items rebuild the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		row, items := orderRowsFrom(original)
		mockQueries.EXPECT().LockOrderByID(ctx, mockDB, original.ID()).Return(row, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, mockDB, original.ID()).Return(items, nil)

		got, err := repo.LockByID(ctx, mockDB, original.ID())
		require.NoError(t, err)

		if diff := cmp.Diff(original.Snapshot(), got.Snapshot()); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().LockOrderByID(ctx, mockDB, id).Return(sqlc.Orders{}, pgx.ErrNoRows)

		got, err := repo.LockByID(ctx, mockDB, id)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderRepository_Save(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOrderRepository(mockQueries, mockDB)

	o := builder.NewOrderBuilder().BuildDomain()
	_, err := o.ApplyPaymentStatus(order.PaymentFailed, 3, o.CreatedAt())
	require.NoError(t, err)

	mockQueries.EXPECT().UpdateOrderState(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateOrderStateParams) error {
			assert.Equal(t, "failed", arg.PaymentStatus)
			assert.Equal(t, int32(1), arg.PaymentRetryCount)
			assert.Equal(t, int64(15389), arg.TotalCents)
			return nil
		})

	require.NoError(t, repo.Save(ctx, mockDB, o))
}

// orderRowsFrom mimics what the database returns for a freshly inserted order.
func orderRowsFrom(o *order.Order) (sqlc.Orders, []sqlc.OrderItems) {
	p := converter.OrderToCreateParams(o)
	row := sqlc.Orders{
		ID:                 p.ID,
		OrderNumber:        p.OrderNumber,
		UserID:             p.UserID,
		Status:             p.Status,
		PaymentStatus:      p.PaymentStatus,
		SubtotalCents:      p.SubtotalCents,
		ShippingCents:      p.ShippingCents,
		TaxCents:           p.TaxCents,
		DiscountCents:      p.DiscountCents,
		TotalCents:         p.TotalCents,
		CouponID:           p.CouponID,
		CouponCode:         p.CouponCode,
		Currency:           p.Currency,
		Region:             p.Region,
		IdempotencyKey:     p.IdempotencyKey,
		BuyerEmail:         p.BuyerEmail,
		BuyerType:          p.BuyerType,
		TaxNumber:          p.TaxNumber,
		TaxOffice:          p.TaxOffice,
		NationalID:         p.NationalID,
		CompanyName:        p.CompanyName,
		ShippingFullName:   p.ShippingFullName,
		ShippingPhone:      p.ShippingPhone,
		ShippingLine1:      p.ShippingLine1,
		ShippingLine2:      p.ShippingLine2,
		ShippingCity:       p.ShippingCity,
		ShippingDistrict:   p.ShippingDistrict,
		ShippingPostalCode: p.ShippingPostalCode,
		ShippingCountry:    p.ShippingCountry,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	itemParams := converter.OrderItemsToParams(o)
	items := make([]sqlc.OrderItems, len(itemParams))
	for i, it := range itemParams {
		items[i] = sqlc.OrderItems(it)
	}
	return row, items
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
