//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"
	queriesmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/queries"
	sharedmock "github.com/yusufKemalPinarci/ticaret-sub000/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleView() *queries.OrderView {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &queries.OrderView{
		ID:             uuid.New(),
		OrderNumber:    "ORD-01J0000000000000000000000",
		UserID:         uuid.New(),
		IdempotencyKey: "idem-key-1",
		Status:         "pending",
		PaymentStatus:  "pending",
		SubtotalCents:  10000,
		ShippingCents:  3990,
		TaxCents:       1399,
		TotalCents:     15389,
		Currency:       "try",
		Items:          []queries.OrderItemView{{ProductID: uuid.New(), ProductName: "Ceramic Mug", Quantity: 2, UnitPriceCents: 5000, LineTotalCents: 10000, TaxCents: 1399}},
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestOrderQueries_GetByIDSystem(t *testing.T) {
	ctx := context.Background()
	view := sampleView()
	key := shared.OrderCacheKey(view.ID)
	cached, err := json.Marshal(view)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		setup     func(*queriesmock.MockOrderReadStore, *sharedmock.MockCache)
		wantErr   error
		wantTotal int64
	}{
		{
			name: "cache hit skips the store",
			setup: func(store *queriesmock.MockOrderReadStore, cache *sharedmock.MockCache) {
				cache.EXPECT().Get(ctx, key).Return(cached, true, nil)
			},
			wantTotal: 15389,
		},
		{
			name: "cache miss reads through and fills",
			setup: func(store *queriesmock.MockOrderReadStore, cache *sharedmock.MockCache) {
				cache.EXPECT().Get(ctx, key).Return(nil, false, nil)
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
				cache.EXPECT().Set(ctx, key, cached, shared.OrderCacheTTL).Return(nil)
			},
			wantTotal: 15389,
		},
		{
			name: "cache failure falls back to store",
			setup: func(store *queriesmock.MockOrderReadStore, cache *sharedmock.MockCache) {
				cache.EXPECT().Get(ctx, key).Return(nil, false, errors.New("redis down"))
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
				cache.EXPECT().Set(ctx, key, gomock.Any(), shared.OrderCacheTTL).Return(errors.New("redis down"))
			},
			wantTotal: 15389,
		},
		{
			name: "malformed cache entry is discarded",
			setup: func(store *queriesmock.MockOrderReadStore, cache *sharedmock.MockCache) {
				cache.EXPECT().Get(ctx, key).Return([]byte("{not json"), true, nil)
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
				cache.EXPECT().Set(ctx, key, gomock.Any(), shared.OrderCacheTTL).Return(nil)
			},
			wantTotal: 15389,
		},
		{
			name: "missing order",
			setup: func(store *queriesmock.MockOrderReadStore, cache *sharedmock.MockCache) {
				cache.EXPECT().Get(ctx, key).Return(nil, false, nil)
				store.EXPECT().FindByID(ctx, view.ID).
					Return(nil, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			wantErr: queries.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockOrderReadStore(ctrl)
			cache := sharedmock.NewMockCache(ctrl)
			tc.setup(store, cache)

			got, err := queries.NewOrderQueries(store, cache).GetByIDSystem(ctx, view.ID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, got.TotalCents)
			if diff := cmp.Diff(view, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderQueries_GetByID_Access(t *testing.T) {
	ctx := context.Background()
	view := sampleView()
	stranger := uuid.New()

	testCases := []struct {
		name    string
		viewer  queries.Viewer
		allowed bool
	}{
		{name: "owner", viewer: queries.Viewer{UserID: &view.UserID, Role: queries.RoleCustomer}, allowed: true},
		{name: "admin", viewer: queries.Viewer{UserID: &stranger, Role: queries.RoleAdmin}, allowed: true},
		{name: "operator", viewer: queries.Viewer{UserID: &stranger, Role: queries.RoleOperator}, allowed: true},
		{name: "guest with checkout key", viewer: queries.Viewer{IdempotencyKey: "idem-key-1"}, allowed: true},
		{name: "guest with wrong key", viewer: queries.Viewer{IdempotencyKey: "idem-key-2"}},
		{name: "anonymous", viewer: queries.Viewer{}},
		{name: "other customer", viewer: queries.Viewer{UserID: &stranger, Role: queries.RoleCustomer}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockOrderReadStore(ctrl)
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := queries.NewOrderQueries(store, nil).GetByID(ctx, view.ID, tc.viewer)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, view.ID, got.ID)
			} else {
				assert.ErrorIs(t, err, queries.ErrOrderAccess)
			}
		})
	}
}

func TestOrderQueries_ListMine_Paginates(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := make([]*queries.OrderListItem, 3)
	for i := range rows {
		rows[i] = &queries.OrderListItem{ID: uuid.New(), TotalCents: int64(1000 * (i + 1)), CreatedAt: base.Add(-time.Duration(i) * time.Hour)}
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := queriesmock.NewMockOrderReadStore(ctrl)
	q := queries.NewOrderQueries(store, nil)

	store.EXPECT().FindByUserFirstPage(ctx, userID, int32(3)).Return(rows, nil)
	page, next, err := q.ListMine(ctx, userID, nil, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	require.NotNil(t, next)

	lastAt, lastID, err := queries.DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, rows[1].ID, lastID)
	assert.True(t, rows[1].CreatedAt.Equal(lastAt))

	store.EXPECT().FindByUserKeyset(ctx, userID, lastAt, lastID, int32(3)).Return(rows[2:], nil)
	page, next, err = q.ListMine(ctx, userID, next, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Nil(t, next)
}

func TestOrderQueries_ListMine_BadCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := queries.NewOrderQueries(queriesmock.NewMockOrderReadStore(ctrl), nil)
	_, _, err := q.ListMine(context.Background(), uuid.New(), &queries.Cursor{After: "%%%"}, 10)

	assert.ErrorIs(t, err, queries.ErrInvalidCursor)
}
