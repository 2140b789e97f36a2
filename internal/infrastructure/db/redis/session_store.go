package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore implements the session binder on Redis. Each session lives at
// session:<token> with the key TTL acting as the inactivity window: reads
// refresh the expiry, so a session dies only after the full TTL of silence.
// Expiry is evaluated lazily by Redis; there is no sweep.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore with the given inactivity TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// sessionRecord is the stored shape. The user snapshot is already public
// (hash stripped) but User's json tags exclude the hash anyway.
type sessionRecord struct {
	User     domain.User `json:"usuario"`
	IssuedAt time.Time   `json:"issued_at"`
}

func (s *SessionStore) Create(ctx context.Context, user domain.User) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(sessionRecord{
		User:     user.Public(),
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	// Touching the session restarts the inactivity window.
	if err := s.client.Expire(ctx, s.key(token), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("refresh session ttl: %w", err)
	}

	return &domain.Session{
		Token:     token,
		User:      rec.User,
		IssuedAt:  rec.IssuedAt,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}, nil
}

func (s *SessionStore) Invalidate(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}

// newToken returns a 256-bit opaque token, hex encoded.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
