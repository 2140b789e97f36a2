package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/api/metrics"
	"github.com/veterinario/clinic-system/internal/api/middleware"
	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// AuthHandler exposes login, logout, and the session profile view.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "User email"
// @Param        password  formData  string  true  "User password"
// @Param        rol       formData  string  true  "Requested role (cliente, doctor, admin)"
// @Success      200  {object}  loginResponse
// @Failure      400  {object}  loginResponse
// @Failure      401  {object}  loginResponse
// @Failure      500  {object}  loginResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return c.JSON(http.StatusBadRequest, loginResponse{Success: false, Message: msgFieldsRequired})
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		status, resp := loginFailure(err)
		return c.JSON(status, resp)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.SessionsCreatedTotal.Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	user := result.User
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: result.Message,
		User:    &user,
		Token:   result.Token,
	})
}

// loginFailure maps a login error to its status, outcome metric, and the
// user-facing envelope. All three authentication failures deliberately return
// the same message; the detail lives in server-side logs and the audit trail.
func loginFailure(err error) (int, loginResponse) {
	var outcome string
	var status int
	var message string

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		outcome, status, message = "invalid_input", http.StatusBadRequest, msgFieldsRequired
	case errors.Is(err, domain.ErrUnauthorizedEmail):
		outcome, status, message = "unauthorized_email", http.StatusUnauthorized, msgAuthFailed
	case errors.Is(err, domain.ErrRoleMismatch):
		outcome, status, message = "role_mismatch", http.StatusUnauthorized, msgAuthFailed
	case errors.Is(err, domain.ErrInvalidCredentials):
		outcome, status, message = "invalid_credentials", http.StatusUnauthorized, msgAuthFailed
	default:
		outcome, status, message = "store_error", http.StatusInternalServerError, msgServerError
	}

	metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
	return status, loginResponse{Success: false, Message: message}
}

// Logout invalidates the caller's session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Failure      500  {object}  loginResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.TokenFromRequest(c)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return c.JSON(http.StatusInternalServerError, loginResponse{Success: false, Message: msgServerError})
	}

	metrics.SessionsInvalidatedTotal.Inc()
	middleware.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, loginResponse{Success: true, Message: msgLogoutDone})
}

// Profile returns the public user fields bound to the caller's session.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  loginResponse
// @Router       /perfil [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	sess, ok := c.Get(middleware.ContextKeySession).(*domain.Session)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return c.JSON(http.StatusOK, sess.User)
}
