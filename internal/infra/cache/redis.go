package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyDedup = "dedup:%s:%s"

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}
	return rdb, nil
}

// RedisCache stores opaque byte values. A zero ttl falls back to the
// configured default so nothing is cached forever.
type RedisCache struct {
	client     redis.Cmdable
	defaultTTL time.Duration
}

func NewRedisCache(client redis.Cmdable, cfg config.RedisConfig) *RedisCache {
	return &RedisCache{client: client, defaultTTL: cfg.OrderCacheTTL}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrapf(err, "redis get %s", key)
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

// RedisDeduplicator claims a key with SET NX; only the first claimant
// within ttl sees true.
type RedisDeduplicator struct {
	client  redis.Cmdable
	service string
}

func NewRedisDeduplicator(client redis.Cmdable, service string) *RedisDeduplicator {
	return &RedisDeduplicator{client: client, service: service}
}

func (d *RedisDeduplicator) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(key), "1", ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "redis setnx")
	}
	return ok, nil
}

func (d *RedisDeduplicator) Forget(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, d.key(key)).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

func (d *RedisDeduplicator) key(k string) string {
	return fmt.Sprintf(keyDedup, d.service, k)
}
