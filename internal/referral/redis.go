package referral

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const slotKeyPrefix = "referral:slot:"

// RedisStore persists one slot per visitor so a captured code survives
// restarts and page reloads until registration succeeds or the TTL expires.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, visitorID string) (string, error) {
	code, err := r.client.Get(ctx, slotKeyPrefix+visitorID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoCode
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (r *RedisStore) Set(ctx context.Context, visitorID, code string) error {
	return r.client.Set(ctx, slotKeyPrefix+visitorID, code, r.ttl).Err()
}

func (r *RedisStore) Clear(ctx context.Context, visitorID string) error {
	return r.client.Del(ctx, slotKeyPrefix+visitorID).Err()
}
