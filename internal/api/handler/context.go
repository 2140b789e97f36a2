package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/api/middleware"
	"github.com/veterinario/clinic-system/internal/core/domain"
)

// ctxIdentity extracts the authenticated identity injected by the Session
// middleware and fast-fails before any service call:
//   - role must be non-empty (presence proves the guard ran)
//   - the bound user id must be a positive integer
func ctxIdentity(c echo.Context) (domain.Role, int, error) {
	role, _ := c.Get(middleware.ContextKeyRole).(string)
	if role == "" {
		return "", 0, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	userID, _ := c.Get(middleware.ContextKeyUserID).(int)
	if userID <= 0 {
		return "", 0, echo.NewHTTPError(http.StatusUnauthorized, "session bound to invalid user")
	}
	return domain.Role(role), userID, nil
}
