//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	repositorymock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponRepository_LockByCode(t *testing.T) {
	ctx := context.Background()
	couponID := uuid.New()

	var percent pgtype.Numeric
	require.NoError(t, percent.Scan("10"))

	testCases := []struct {
		name          string
		row           sqlc.Coupons
		rowErr        error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		wantDiscount  int64
	}{
		{
			name: "success: percentage coupon",
			row: sqlc.Coupons{
				ID:            couponID,
				Code:          "SAVE10",
				PercentOff:    percent,
				MinOrderCents: 10000,
				IsActive:      true,
			},
			wantDiscount: 1539,
		},
		{
			name: "success: fixed coupon",
			row: sqlc.Coupons{
				ID:             couponID,
				Code:           "FLAT50",
				AmountOffCents: pgtype.Int8{Int64: 5000, Valid: true},
				IsActive:       true,
			},
			wantDiscount: 5000,
		},
		{
			name:          "error: coupon not found",
			rowErr:        pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: row carries both discounts",
			row: sqlc.Coupons{
				ID:             couponID,
				Code:           "BROKEN",
				AmountOffCents: pgtype.Int8{Int64: 100, Valid: true},
				PercentOff:     percent,
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			mockQueries.EXPECT().LockCouponByCode(ctx, mockDB, "SAVE10").Return(tc.row, tc.rowErr)

			got, err := repo.LockByCode(ctx, mockDB, "SAVE10")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, couponID, got.ID())
			assert.Equal(t, tc.wantDiscount, got.Discount().Amount(15389))
		})
	}
}

func TestCouponRepository_IncrementUsage(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name      string
		affected  int64
		mockErr   error
		want      bool
		wantError bool
	}{
		{name: "success: usage incremented", affected: 1, want: true},
		{name: "success: limit already reached", affected: 0, want: false},
		{name: "error: database failure", mockErr: errors.New("connection refused"), wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			mockQueries.EXPECT().IncrementCouponUsage(ctx, mockDB, id).Return(tc.affected, tc.mockErr)

			got, err := repo.IncrementUsage(ctx, mockDB, id)
			if tc.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCouponRepository_CreateRedemption(t *testing.T) {
	ctx := context.Background()
	couponID, userID := uuid.New(), uuid.New()

	t.Run("error: single-use coupon redeemed twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		mockQueries.EXPECT().CreateCouponRedemption(ctx, mockDB, sqlc.CreateCouponRedemptionParams{
			CouponID:  couponID,
			UserID:    userID,
			SingleUse: true,
		}).Return(uuid.Nil, dup)

		id, err := repo.CreateRedemption(ctx, mockDB, couponID, userID, nil, true)
		require.Error(t, err)
		assert.Equal(t, uuid.Nil, id)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
