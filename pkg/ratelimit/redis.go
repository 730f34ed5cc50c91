package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a Store shared across replicas, backed by a Redis
// counter per key. INCR is atomic server-side, so concurrent requests
// racing for the last slot are serialized by Redis.
type RedisStore struct {
	rdb       *redis.Client
	keyPrefix string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, keyPrefix: "ratelimit:"}
}

func (s *RedisStore) Check(ctx context.Context, key string, max int, window time.Duration) (Result, error) {
	redisKey := s.keyPrefix + key
	now := time.Now()

	pipe := s.rdb.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	ttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	count := incr.Val()

	// First hit in a window, or a counter left without expiry by a
	// crashed predecessor: start the window now.
	resetAt := now.Add(window)
	if count == 1 || ttl.Val() < 0 {
		if err := s.rdb.PExpire(ctx, redisKey, window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expire failed: %w", err)
		}
	} else {
		resetAt = now.Add(ttl.Val())
	}

	if count > int64(max) {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}

	return Result{Allowed: true, Remaining: max - int(count), ResetAt: resetAt}, nil
}
