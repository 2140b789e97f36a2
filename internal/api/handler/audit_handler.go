package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/core/ports"
)

// AuditHandler exposes the security trail to administrators.
type AuditHandler struct {
	audit ports.AuditService
}

func NewAuditHandler(audit ports.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns the most recent security events, newest first.
//
// @Summary      List recent security events
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of events (default 100)"
// @Success      200  {array}   domain.AuditEvent
// @Failure      403  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /eventos [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.audit.Recent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Success: false, Message: msgServerError})
	}
	return c.JSON(http.StatusOK, events)
}
