package ports

import (
	"context"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// LoginInput carries raw credentials exactly as submitted by the client.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token   string
	Message string
	User    domain.User // public fields only, password hash excluded
}

// AuthService implements the login/logout flow: field validation, the fixed
// email→role binding check, credential verification, and session handling.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}
