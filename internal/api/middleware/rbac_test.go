package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

func runRBAC(t *testing.T, role string, allowed ...domain.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/eventos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(ContextKeyRole, role)
	}

	reached := false
	handler := RBAC(allowed...)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, reached
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	_, reached := runRBAC(t, "admin", domain.RoleAdmin)
	if !reached {
		t.Fatal("admin rejected from an admin-only route")
	}
}

func TestRBAC_RejectsOtherRoles(t *testing.T) {
	for _, role := range []string{"cliente", "doctor"} {
		rec, reached := runRBAC(t, role, domain.RoleAdmin)
		if reached {
			t.Fatalf("role %q reached an admin-only route", role)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %q: status = %d, want %d", role, rec.Code, http.StatusForbidden)
		}
	}
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	rec, reached := runRBAC(t, "", domain.RoleAdmin)
	if reached {
		t.Fatal("request without a role reached an admin-only route")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
