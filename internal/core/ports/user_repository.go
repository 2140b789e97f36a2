package ports

import (
	"context"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// UserRepository defines persistence for clinic users.
type UserRepository interface {
	// FindActiveUser returns the active user matching the normalized email and
	// role, including the stored password hash so the caller can verify the
	// credential. Returns domain.ErrUserNotFound when no such row exists;
	// inactive users are never returned.
	FindActiveUser(ctx context.Context, email string, role domain.Role) (*domain.User, error)
}
