//go:build unit

package repository_test

import (
	"context"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	repositorymock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStockRepository_Lock(t *testing.T) {
	ctx := context.Background()
	productID, variantID := uuid.New(), uuid.New()

	testCases := []struct {
		name       string
		sku        reservation.SKU
		setupMock  func(*repositorymock.MockStockWriteQueries, sqlc.DBTX)
		want       int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: product stock row",
			sku:  reservation.NewSKU(productID, nil),
			setupMock: func(mock *repositorymock.MockStockWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockProductStock(ctx, tx, productID).Return(int32(7), nil)
			},
			want: 7,
		},
		{
			name: "success: variant stock row",
			sku:  reservation.NewSKU(productID, &variantID),
			setupMock: func(mock *repositorymock.MockStockWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockVariantStock(ctx, tx, sqlc.LockVariantStockParams{ID: variantID, ProductID: productID}).Return(int32(2), nil)
			},
			want: 2,
		},
		{
			name: "error: unknown product",
			sku:  reservation.NewSKU(productID, nil),
			setupMock: func(mock *repositorymock.MockStockWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockProductStock(ctx, tx, productID).Return(int32(0), pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockStockWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewStockRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			got, err := repo.Lock(ctx, mockDB, tc.sku)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStockRepository_Decrement(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	sku := reservation.NewSKU(productID, nil)

	for _, tc := range []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "stock covered the quantity", affected: 1, want: true},
		{name: "guard rejected the decrement", affected: 0, want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockStockWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewStockRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DecrementProductStock(ctx, mockDB, sqlc.DecrementProductStockParams{Quantity: 3, ID: productID}).Return(tc.affected, nil)

			ok, err := repo.Decrement(ctx, mockDB, sku, 3)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
