package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// tokenKey is the fixed storage key for the bearer token.
const tokenKey = "portal:auth_token"

// RedisTokenStore persists the stored token in Redis so the session survives
// process restarts. No TTL is applied; token lifetime is the issuer's call.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (r *RedisTokenStore) Get(ctx context.Context) (string, error) {
	raw, err := r.rdb.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return raw, nil
}

func (r *RedisTokenStore) Set(ctx context.Context, raw string) error {
	return r.rdb.Set(ctx, tokenKey, raw, 0).Err()
}

func (r *RedisTokenStore) Clear(ctx context.Context) error {
	return r.rdb.Del(ctx, tokenKey).Err()
}
