package token

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds RedisStore tuning parameters.
type Config struct {
	// RedisPrefix namespaces the credential key. Defaults to "rt".
	RedisPrefix string
	// DefaultTTL applies when the stored value carries no usable exp claim.
	// Zero means no expiry.
	DefaultTTL time.Duration
	// ExpirySlack is subtracted from the JWT-derived TTL so the stored
	// credential drops out of Redis slightly before the server rejects it.
	ExpirySlack time.Duration
}

// RedisStore persists the credential in Redis so every process sharing the
// instance observes one credential and one refresh takes effect everywhere.
type RedisStore struct {
	redis redis.UniversalClient
	cfg   Config
	now   func() time.Time
}

// NewRedisStore creates a [RedisStore] backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, cfg Config) *RedisStore {
	if cfg.RedisPrefix == "" {
		cfg.RedisPrefix = "rt"
	}
	return &RedisStore{
		redis: client,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *RedisStore) key() string {
	return s.cfg.RedisPrefix + ":access"
}

// Token describes the token operation and its observable behavior.
//
// Token may return an error when input validation, dependency calls, or security checks fail.
// Token does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Token(ctx context.Context) (string, error) {
	val, err := s.redis.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores the credential. When the value is a JWT with an exp claim, the
// Redis TTL is the remaining lifetime minus ExpirySlack; otherwise DefaultTTL
// applies. A credential whose remaining lifetime is already spent is rejected
// with [ErrTokenExpired] rather than stored.
func (s *RedisStore) Set(ctx context.Context, raw string) error {
	ttl := s.cfg.DefaultTTL
	if exp, ok := ExpiresAt(raw); ok {
		remaining := exp.Sub(s.now()) - s.cfg.ExpirySlack
		if remaining <= 0 {
			return ErrTokenExpired
		}
		ttl = remaining
	}
	return s.redis.Set(ctx, s.key(), raw, ttl).Err()
}

// Invalidate describes the invalidate operation and its observable behavior.
//
// Invalidate may return an error when input validation, dependency calls, or security checks fail.
// Invalidate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Invalidate(ctx context.Context) error {
	return s.redis.Del(ctx, s.key()).Err()
}
