package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/api/metrics"
	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// Context keys set by Session for downstream handlers.
const (
	ContextKeySession = "session"
	ContextKeyUserID  = "user_id"
	ContextKeyRole    = "rol"
)

// Session is the admission check for protected routes. It resolves the
// caller's token against the session store and injects the bound identity
// into the request context. A missing, unknown, or expired session — or a
// session bound to a non-positive user id — is rejected: any session found is
// invalidated, the cookie is cleared, and browsers are sent back to the entry
// page. The success path has no side effects beyond the store's TTL refresh.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("missing_token").Inc()
				return reject(c)
			}

			sess, err := store.Get(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					metrics.SessionRejectionsTotal.WithLabelValues("not_found").Inc()
					return reject(c)
				}
				return fmt.Errorf("session lookup: %w", err)
			}

			if sess.User.ID <= 0 {
				// Defective binding; kill the session rather than let it through.
				_ = store.Invalidate(c.Request().Context(), token)
				metrics.SessionsInvalidatedTotal.Inc()
				metrics.SessionRejectionsTotal.WithLabelValues("invalid_user").Inc()
				return reject(c)
			}

			c.Set(ContextKeySession, sess)
			c.Set(ContextKeyUserID, sess.User.ID)
			c.Set(ContextKeyRole, string(sess.User.Role))
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the cookie or, failing
// that, from a bearer Authorization header.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// reject clears the session cookie and sends the caller back to the entry
// page (browsers) or a 401 envelope (API clients).
func reject(c echo.Context) error {
	ClearSessionCookie(c)
	if strings.Contains(c.Request().Header.Get("Accept"), echo.MIMETextHTML) {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": "Sesión no válida",
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
