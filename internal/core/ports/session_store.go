package ports

import (
	"context"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// SessionStore binds opaque tokens to user snapshots with an inactivity TTL.
// Expiry is enforced lazily by the backing store; there is no sweep.
type SessionStore interface {
	// Create stores a snapshot of the user's public fields and returns the
	// opaque token that references it.
	Create(ctx context.Context, user domain.User) (string, error)
	// Get resolves a token and restarts its inactivity window. Returns
	// domain.ErrSessionNotFound for absent or expired sessions.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Invalidate removes the session. Unknown tokens are not an error.
	Invalidate(ctx context.Context, token string) error
}
