package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when a token does not resolve to a signed-in user.
var ErrNoSession = errors.New("no active session")

const keyPrefix = "auth:session:"

// SessionStore resolves bearer tokens issued by the external auth provider to user ids.
type SessionStore interface {
	Lookup(ctx context.Context, token string) (uuid.UUID, error)
	Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Revoke(ctx context.Context, token string) error
}

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(token string) string {
	return keyPrefix + token
}

func (s *redisSessionStore) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrNoSession
	}
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNoSession
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("session lookup failed: %w", err)
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("session %q holds malformed user id: %w", token, err)
	}
	return userID, nil
}

func (s *redisSessionStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(token), userID.String(), ttl).Err()
}

func (s *redisSessionStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
