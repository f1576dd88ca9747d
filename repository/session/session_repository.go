package session

import (
	"context"
	"time"

	redisclient "github.com/wpangestu/contacts-api/cmd/redis"
)

// SessionRepository caches token -> username lookups in Redis so the auth
// middleware can resolve the owning user without a token-column scan. The
// database row stays authoritative; every hit is verified against it, and
// login/logout evict the affected tokens.
type SessionRepository interface {
	SetSession(ctx context.Context, token, username string, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

type redis struct{}

// NewRepository returns a Redis SessionRepository implementation
func NewRepository() SessionRepository {
	return &redis{}
}

const sessionKeyPrefix = "session:"

// SetSession stores the token owner with a TTL
func (r *redis) SetSession(ctx context.Context, token, username string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKeyPrefix+token, username, ttl).Err()
}

// GetSession retrieves the owner of a token; empty string on cache miss
func (r *redis) GetSession(ctx context.Context, token string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteSession evicts a token from the cache
func (r *redis) DeleteSession(ctx context.Context, token string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKeyPrefix+token).Err()
}
