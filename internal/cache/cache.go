package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the read-cache capability injected into services. It is strictly
// best-effort: a miss and an unreachable store look the same to callers, and
// Set/Delete failures must never fail the surrounding mutation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
}

type Redis struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedis(addr string, log *slog.Logger) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    log,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn("cache get failed", "key", key, "err", err)
		}
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		r.log.Warn("cache marshal failed", "key", key, "err", err)
		return
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.log.Warn("cache set failed", "key", key, "err", err)
	}
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) Close() error { return r.client.Close() }
