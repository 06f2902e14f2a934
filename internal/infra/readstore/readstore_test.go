//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/readstore"
	sqlc "github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/sqlc/generated"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/pgconv"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"
	"github.com/yusufKemalPinarci/ticaret-sub000/tests/common/builder"
	readstoremock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	orderID, userID, productID, variantID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	paidAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	row := sqlc.Orders{
		ID:                orderID,
		OrderNumber:       "ORD-20250601-0001",
		UserID:            userID,
		IdempotencyKey:    "key-1",
		Status:            "processing",
		PaymentStatus:     "succeeded",
		PaymentIntentID:   pgconv.StringToPgtype("pi_1"),
		SubtotalCents:     10000,
		ShippingCents:     3990,
		TaxCents:          1399,
		TotalCents:        15389,
		Currency:          "try",
		BuyerEmail:        "buyer@example.com",
		BuyerType:         "individual",
		ShippingFullName:  "Ayse Yilmaz",
		ShippingCity:      "Istanbul",
		ShippingCountry:   "TR",
		PaidAt:            pgconv.TimeToPgtype(paidAt),
		CreatedAt:         pgconv.TimeToPgtype(paidAt.Add(-time.Hour)),
		UpdatedAt:         pgconv.TimeToPgtype(paidAt),
		PaymentRetryCount: 1,
	}
	items := []sqlc.OrderItems{
		{OrderID: orderID, Position: 0, ProductID: productID, VariantID: pgconv.UUIDToPgtype(variantID), ProductName: "Kettle", Quantity: 2, UnitPriceCents: 5000, LineTotalCents: 10000, TaxCents: 1000},
	}

	t.Run("success: maps row and items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, nil)
		mockQueries.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(row, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, gomock.Any(), orderID).Return(items, nil)

		got, err := store.FindByID(ctx, orderID)

		require.NoError(t, err)
		assert.Equal(t, "pi_1", *got.PaymentIntentID)
		assert.Equal(t, int64(15389), got.TotalCents)
		assert.Equal(t, paidAt, got.PaidAt.UTC())
		assert.Nil(t, got.ShippedAt)
		assert.Nil(t, got.CouponCode)
		want := []queries.OrderItemView{{
			ProductID:      productID,
			VariantID:      &variantID,
			ProductName:    "Kettle",
			Quantity:       2,
			UnitPriceCents: 5000,
			LineTotalCents: 10000,
			TaxCents:       1000,
		}}
		if diff := cmp.Diff(want, got.Items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, nil)
		mockQueries.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, orderID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: items query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, nil)
		mockQueries.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(row, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, gomock.Any(), orderID).Return(nil, errors.New("timeout"))

		_, err := store.FindByID(ctx, orderID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderReadStore_Listing(t *testing.T) {
	ctx := context.Background()
	userID, lastID := uuid.New(), uuid.New()
	lastCreatedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
	store := readstore.NewOrderReadStore(mockQueries, nil)

	mockQueries.EXPECT().
		ListOrdersByUserFirstPage(ctx, gomock.Any(), sqlc.ListOrdersByUserFirstPageParams{UserID: userID, Limit: 21}).
		Return([]sqlc.ListOrdersByUserFirstPageRow{{ID: lastID, OrderNumber: "ORD-1", TotalCents: 100, Currency: "try"}}, nil)
	mockQueries.EXPECT().
		ListOrdersByUserKeyset(ctx, gomock.Any(), sqlc.ListOrdersByUserKeysetParams{
			UserID:        userID,
			LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
			LastID:        lastID,
			Limit:         21,
		}).
		Return(nil, nil)

	first, err := store.FindByUserFirstPage(ctx, userID, 21)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "ORD-1", first[0].OrderNumber)

	next, err := store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, 21)
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestUserReadStore(t *testing.T) {
	ctx := context.Background()
	row := builder.NewUserBuilder().WithRole("operator").BuildInfra()

	t.Run("FindByID maps the authorized view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, nil)
		mockQueries.EXPECT().FindUserByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		got, err := store.FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, &queries.AuthorizedUserView{
			ID:       row.ID,
			Email:    row.Email,
			Role:     "operator",
			IsActive: true,
		}, got)
	})

	t.Run("FindByEmail not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, nil)
		mockQueries.EXPECT().FindUserByEmail(ctx, gomock.Any(), "ghost@example.com").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := store.FindByEmail(ctx, "ghost@example.com")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
