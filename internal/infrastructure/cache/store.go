// Package cache decorates the user repository with a Redis read-through cache.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-auth/pkg/helpers"
)

// Store is a JSON key/value store with expiry.
type Store interface {
	GetJSON(ctx context.Context, key string, dest *UserRecord) (bool, error)
	SetJSON(ctx context.Context, key string, value UserRecord, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisStore is the Store backed by go-redis.
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) GetJSON(ctx context.Context, key string, dest *UserRecord) (bool, error) {
	return helpers.RedisGetJSON(ctx, s.rdb, key, dest)
}

func (s *RedisStore) SetJSON(ctx context.Context, key string, value UserRecord, ttl time.Duration) error {
	return helpers.RedisSetJSON(ctx, s.rdb, key, value, ttl)
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return helpers.RedisDel(ctx, s.rdb, key)
}
