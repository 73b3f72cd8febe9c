package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter allows up to limit analyses per client in a fixed window.
// Clients are keyed by a hash of their bearer token, never the raw token.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow counts the request and reports whether it fits in the window.
// INCR and EXPIRE NX run in one transaction, so concurrent callers cannot
// all pass, and a key that somehow lost its TTL gets one back.
func (r *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := usageKey(clientID)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(r.limit), nil
}

func usageKey(clientID string) string {
	sum := sha256.Sum256([]byte(clientID))
	return "usage:" + hex.EncodeToString(sum[:8])
}

// NoopLimiter is used when no Redis address is configured.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
