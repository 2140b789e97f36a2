package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

type stubSessionStore struct {
	sessions    map[string]*domain.Session
	invalidated []string
}

func (s *stubSessionStore) Create(_ context.Context, _ domain.User) (string, error) {
	return "", nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Invalidate(_ context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	delete(s.sessions, token)
	return nil
}

func validSession() *domain.Session {
	return &domain.Session{
		User: domain.User{
			ID:    7,
			Name:  "Cliente Prueba",
			Email: "cliente@prueba.com",
			Role:  domain.RoleClient,
		},
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(domain.DefaultSessionTTL),
	}
}

func runSession(t *testing.T, store *stubSessionStore, mutate func(*http.Request)) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/citas", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := Session(store)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c, reached
}

func TestSession_MissingToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}

	rec, _, reached := runSession(t, store, nil)

	if reached {
		t.Fatal("handler reached without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSession_MissingTokenBrowserRedirects(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}

	rec, _, reached := runSession(t, store, func(req *http.Request) {
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
	})

	if reached {
		t.Fatal("handler reached without a token")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("Location = %q, want /", loc)
	}
}

func TestSession_UnknownToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}

	rec, _, reached := runSession(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
	})

	if reached {
		t.Fatal("handler reached with an unknown token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSession_InvalidUserBindingKillsSession(t *testing.T) {
	broken := validSession()
	broken.User.ID = 0
	store := &stubSessionStore{sessions: map[string]*domain.Session{"tok": broken}}

	rec, _, reached := runSession(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	})

	if reached {
		t.Fatal("handler reached with a session bound to user id 0")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if len(store.invalidated) != 1 || store.invalidated[0] != "tok" {
		t.Fatalf("invalidated = %v, want [tok]", store.invalidated)
	}
}

func TestSession_ValidTokenPopulatesContext(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{"tok": validSession()}}

	rec, c, reached := runSession(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	})

	if !reached {
		t.Fatalf("handler not reached, status = %d", rec.Code)
	}
	if got, _ := c.Get(ContextKeyUserID).(int); got != 7 {
		t.Fatalf("user_id = %d, want 7", got)
	}
	if got, _ := c.Get(ContextKeyRole).(string); got != "cliente" {
		t.Fatalf("rol = %q, want cliente", got)
	}
	if _, ok := c.Get(ContextKeySession).(*domain.Session); !ok {
		t.Fatal("session not stored in context")
	}
}

func TestSession_BearerHeaderAccepted(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{"tok": validSession()}}

	_, _, reached := runSession(t, store, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer tok")
	})

	if !reached {
		t.Fatal("bearer token not accepted")
	}
}
