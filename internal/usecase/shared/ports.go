package shared

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

const OrderCacheTTL = 5 * time.Minute

func OrderCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("order:%s", id)
}

// Cache is a read-through accelerator. It is never a source of truth, so
// callers treat every error as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Deduplicator reports whether key is seen for the first time within ttl.
// Forget drops a claim so a failed delivery can be processed again.
type Deduplicator interface {
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Forget(ctx context.Context, key string) error
}
