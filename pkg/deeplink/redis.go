package deeplink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)

// Config holds settings for the Redis-backed store.
type Config struct {
	Key string        `env:"DEEPLINK_REDIS_KEY" envDefault:"authflow:deeplink"`
	TTL time.Duration `env:"DEEPLINK_TTL" envDefault:"30m"`
}

// RedisStore keeps the deep-link target in Redis under a single key, so it
// survives process restarts between the original navigation attempt and the
// completed sign-in. Take uses GETDEL so concurrent sign-ins cannot consume
// the same target twice.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store with the given config.
func NewRedisStore(client redis.UniversalClient, cfg Config) *RedisStore {
	return &RedisStore{
		client: client,
		key:    cfg.Key,
		ttl:    cfg.TTL,
	}
}

// Set stores the deep-link target, replacing any previous one.
func (s *RedisStore) Set(ctx context.Context, target string) error {
	if err := s.client.Set(ctx, s.key, target, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store deep link: %w", err)
	}
	return nil
}

// Take returns the stored target and clears it atomically.
func (s *RedisStore) Take(ctx context.Context) (string, error) {
	target, err := s.client.GetDel(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to take deep link: %w", err)
	}
	return target, nil
}
