package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// RBAC enforces role-based access control on top of the session guard.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"message": "Acceso restringido",
				})
			}
			return next(c)
		}
	}
}
