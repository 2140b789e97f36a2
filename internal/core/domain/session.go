package domain

import (
	"errors"
	"time"
)

// DefaultSessionTTL is the inactivity window after which a session expires.
const DefaultSessionTTL = 30 * time.Minute

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-held proof of authentication, referenced by an opaque
// token. It carries a read-only snapshot of the user's public fields, never a
// live reference into the user store.
type Session struct {
	Token     string    `json:"-"`
	User      User      `json:"usuario"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
