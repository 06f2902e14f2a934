//go:build unit

package repository_test

import (
	"context"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/repository"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
	repositorymock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCartRepository_FindForCheckout(t *testing.T) {
	ctx := context.Background()
	userID, cartID, productID := uuid.New(), uuid.New(), uuid.New()
	items := []sqlc.ListCartItemsWithProductRow{{
		ID:             uuid.New(),
		ProductID:      productID,
		Quantity:       2,
		UnitPriceCents: 5000,
		ProductName:    "Ceramic Mug",
		WeightGrams:    400,
	}}

	t.Run("success: user cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCartRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindCartByUserID(ctx, mockDB, pgconv.UUIDToPgtype(userID)).Return(sqlc.Carts{ID: cartID, UserID: pgconv.UUIDToPgtype(userID)}, nil)
		mockQueries.EXPECT().ListCartItemsWithProduct(ctx, mockDB, cartID).Return(items, nil)

		c, err := repo.FindForCheckout(ctx, mockDB, &userID, "")
		require.NoError(t, err)
		assert.Equal(t, cartID, c.ID())
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 400, c.Items()[0].WeightGrams)
	})

	t.Run("success: falls back to the session cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCartWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCartRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindCartByUserID(ctx, mockDB, gomock.Any()).Return(sqlc.Carts{}, pgx.ErrNoRows)
		mockQueries.EXPECT().FindCartBySessionID(ctx, mockDB, pgconv.StringToPgtype("sess-1")).Return(sqlc.Carts{ID: cartID}, nil)
		mockQueries.EXPECT().ListCartItemsWithProduct(ctx, mockDB, cartID).Return(nil, nil)

		c, err := repo.FindForCheckout(ctx, mockDB, &userID, "sess-1")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("error: no owner and no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewCartRepository(repositorymock.NewMockCartWriteQueries(ctrl), &mockDBTX{})

		_, err := repo.FindForCheckout(ctx, &mockDBTX{}, nil, "")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
