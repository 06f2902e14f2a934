package queries

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/infra"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

var (
	ErrOrderNotFound = errs.New("order view not found")
	ErrOrderAccess   = errs.New("order view access denied")
	ErrInvalidCursor = errs.New("invalid cursor")
)

// Viewer identifies who is reading an order. Guests prove ownership with
// the idempotency key they checked out with.
type Viewer struct {
	UserID         *uuid.UUID
	Role           string
	IdempotencyKey string
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, viewer Viewer) (*OrderView, error)
	// GetByIDSystem skips access checks; used for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
	cache shared.Cache
}

func NewOrderQueries(store OrderReadStore, cache shared.Cache) OrderQueries {
	return &orderQueriesImpl{store: store, cache: cache}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewer Viewer) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(view, viewer) {
		return nil, ErrOrderAccess
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	key := shared.OrderCacheKey(id)
	if view, ok := q.fromCache(ctx, key); ok {
		return view, nil
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	q.toCache(ctx, key, view)
	return view, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		rows []*OrderListItem
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *orderQueriesImpl) fromCache(ctx context.Context, key string) (*OrderView, bool) {
	if q.cache == nil {
		return nil, false
	}
	raw, ok, err := q.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "order cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var view OrderView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.WarnContext(ctx, "discarding malformed cached order", "key", key, "error", err)
		return nil, false
	}
	return &view, true
}

func (q *orderQueriesImpl) toCache(ctx context.Context, key string, view *OrderView) {
	if q.cache == nil {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := q.cache.Set(ctx, key, raw, shared.OrderCacheTTL); err != nil {
		slog.WarnContext(ctx, "order cache write failed", "key", key, "error", err)
	}
}

func canView(view *OrderView, viewer Viewer) bool {
	switch viewer.Role {
	case RoleAdmin, RoleOperator:
		return true
	}
	if viewer.UserID != nil && *viewer.UserID == view.UserID {
		return true
	}
	if viewer.IdempotencyKey == "" || view.IdempotencyKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(viewer.IdempotencyKey), []byte(view.IdempotencyKey)) == 1
}
