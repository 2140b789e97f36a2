package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// AuditSink is where the login flow drops security events. Implementations
// must not block the login path; the queue dispatcher satisfies this.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// AuthService implements login and logout over the user store, the session
// binder, and the fixed email→role binding table.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	audit    AuditSink
	bindings map[string]domain.Role
	logger   zerolog.Logger
}

// NewAuthService builds an AuthService. The bindings table is the injected
// email→role allow-list; keys are normalized (trimmed, lower-cased) once here
// so lookups stay cheap.
func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	audit AuditSink,
	bindings map[string]domain.Role,
	logger zerolog.Logger,
) *AuthService {
	normalized := make(map[string]domain.Role, len(bindings))
	for email, role := range bindings {
		normalized[strings.ToLower(strings.TrimSpace(email))] = role
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		audit:    audit,
		bindings: normalized,
		logger:   logger,
	}
}

// Login runs the full authentication pipeline. A role mismatch is rejected
// strictly before the user store is touched. All three authentication
// failures are distinct errors internally; the transport layer collapses them
// into one generic message so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	email := strings.TrimSpace(input.Email)
	requested := domain.Role(strings.TrimSpace(input.Role))
	if email == "" || strings.TrimSpace(input.Password) == "" || requested == "" {
		return nil, fmt.Errorf("%w: email, password and rol are required", domain.ErrInvalidInput)
	}

	email = strings.ToLower(email)

	mandated, ok := s.bindings[email]
	if !ok {
		s.logger.Warn().Str("email", email).Msg("login attempt with unauthorized email")
		s.record(domain.AuditEvent{
			Type:          domain.AuditLoginFailure,
			Email:         email,
			AttemptedRole: requested,
		})
		return nil, domain.ErrUnauthorizedEmail
	}

	if requested != mandated {
		s.logger.Warn().
			Str("email", email).
			Str("mandated_role", string(mandated)).
			Str("attempted_role", string(requested)).
			Msg("role mismatch on login")
		s.record(domain.AuditEvent{
			Type:          domain.AuditRoleMismatch,
			Email:         email,
			MandatedRole:  mandated,
			AttemptedRole: requested,
		})
		return nil, domain.ErrRoleMismatch
	}

	user, err := s.users.FindActiveUser(ctx, email, mandated)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuditEvent{
				Type:         domain.AuditLoginFailure,
				Email:        email,
				MandatedRole: mandated,
			})
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("email", email).Msg("user lookup failed")
		return nil, domain.ErrStoreUnavailable
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.record(domain.AuditEvent{
			Type:         domain.AuditLoginFailure,
			Email:        email,
			MandatedRole: mandated,
		})
		return nil, domain.ErrInvalidCredentials
	}

	public := user.Public()
	token, err := s.sessions.Create(ctx, public)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("session creation failed")
		return nil, domain.ErrStoreUnavailable
	}

	s.logger.Info().
		Str("email", email).
		Str("rol", string(public.Role)).
		Int("user_id", public.ID).
		Msg("login successful")
	s.record(domain.AuditEvent{
		Type:         domain.AuditLoginSuccess,
		Email:        email,
		MandatedRole: mandated,
	})

	return &ports.LoginResult{
		Token:   token,
		Message: "¡Acceso autorizado! Bienvenido " + public.Name,
		User:    public,
	}, nil
}

// Logout invalidates the session referenced by token. An empty token is a
// no-op so the handler can call it unconditionally.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Invalidate(ctx, token); err != nil {
		s.logger.Error().Err(err).Msg("session invalidation failed")
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (s *AuthService) record(event domain.AuditEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	s.audit.Enqueue(event)
}
