//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis overrides the handful of commands the adapters issue; any other
// call panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failing error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failing != nil {
		return redis.NewStringResult("", f.failing)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.failing != nil {
		return redis.NewStatusResult("", f.failing)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if f.failing != nil {
		return redis.NewBoolResult(false, f.failing)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	c := NewRedisCache(rdb, config.RedisConfig{OrderCacheTTL: 5 * time.Minute})

	_, hit, err := c.Get(ctx, "order:1")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "order:1", []byte(`{"id":"1"}`), 0))
	assert.Equal(t, 5*time.Minute, rdb.ttls["order:1"])

	got, hit, err := c.Get(ctx, "order:1")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.JSONEq(t, `{"id":"1"}`, string(got))

	require.NoError(t, c.Set(ctx, "order:2", []byte("x"), time.Minute))
	assert.Equal(t, time.Minute, rdb.ttls["order:2"])

	require.NoError(t, c.Invalidate(ctx, "order:1", "order:2"))
	_, hit, err = c.Get(ctx, "order:1")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Invalidate(ctx))
}

func TestRedisCache_Failures(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	rdb.failing = errors.New("connection refused")
	c := NewRedisCache(rdb, config.RedisConfig{OrderCacheTTL: time.Minute})

	_, hit, err := c.Get(ctx, "order:1")
	assert.Error(t, err)
	assert.False(t, hit)

	assert.Error(t, c.Set(ctx, "order:1", []byte("x"), 0))
}

func TestRedisDeduplicator_FirstSeen(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	d := NewRedisDeduplicator(rdb, "stripe")

	first, err := d.FirstSeen(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.True(t, first)
	assert.Equal(t, time.Hour, rdb.ttls["dedup:stripe:evt_1"])

	again, err := d.FirstSeen(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.False(t, again)

	other, err := d.FirstSeen(ctx, "evt_2", time.Hour)
	require.NoError(t, err)
	assert.True(t, other)

	require.NoError(t, d.Forget(ctx, "evt_1"))
	retried, err := d.FirstSeen(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.True(t, retried)

	rdb.failing = errors.New("timeout")
	_, err = d.FirstSeen(ctx, "evt_3", time.Hour)
	assert.Error(t, err)
}
