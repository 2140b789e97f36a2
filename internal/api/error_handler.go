package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/pkg/logger"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPErrorHandler is the central safety net for errors that escape a
// handler. Known domain errors map to their status; everything else becomes a
// logged 500 with a generic message so internals never leak to the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Error del servidor. Intente nuevamente."

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Todos los campos son obligatorios"
	case errors.Is(err, domain.ErrUnauthorizedEmail),
		errors.Is(err, domain.ErrRoleMismatch),
		errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Email o contraseña incorrectos"
	case errors.Is(err, domain.ErrSessionNotFound):
		status, message = http.StatusUnauthorized, "Sesión no válida"
	case errors.Is(err, domain.ErrReferenceNotFound):
		status, message = http.StatusUnprocessableEntity, "La mascota, el doctor o el cliente no existen"
	}

	log := logger.Get()
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled request error")
	}

	if writeErr := c.JSON(status, errorResponse{Success: false, Message: message}); writeErr != nil {
		log.Error().Err(writeErr).Msg("failed to write error response")
	}
}
