package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks per-user session revocation backed by Redis.
// Key format: revoked:<user_id> → unix timestamp of the revocation.
//
// Tokens issued before the recorded timestamp are rejected by the auth
// middleware. Keys expire after the token lifetime, by which point every
// token they could invalidate has expired on its own.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore. tokenTTL must match the session
// token lifetime so revocation marks outlive the tokens they cover.
func NewSessionStore(client *redis.Client, tokenTTL time.Duration) *SessionStore {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: tokenTTL}
}

// RevokeAll invalidates every token issued to the user before now.
func (s *SessionStore) RevokeAll(ctx context.Context, userID string) error {
	now := time.Now().Unix()
	if err := s.client.Set(ctx, s.key(userID), now, s.ttl).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// RevokedAt returns the user's revocation timestamp, or the zero time when no
// revocation is recorded.
func (s *SessionStore) RevokedAt(ctx context.Context, userID string) (time.Time, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("revocation lookup: %w", err)
	}

	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("revocation lookup: parse %q: %w", val, err)
	}
	return time.Unix(ts, 0), nil
}

func (s *SessionStore) key(userID string) string {
	return "revoked:" + userID
}
