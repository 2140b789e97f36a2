package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/veterinario/clinic-system/internal/api/metrics"
	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for citas.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List returns the appointments visible to the authenticated caller. The
// visibility scope comes from the session identity, never from query
// parameters.
//
// @Summary      List appointments for the caller
// @Tags         citas
// @Produce      json
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /citas [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	role, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.List(c.Request().Context(), ports.ListAppointmentsInput{
		Role:   role,
		UserID: userID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, statusResponse{Success: false, Message: msgServerError})
	}

	metrics.AppointmentsListedTotal.WithLabelValues(string(role)).Inc()
	return c.JSON(http.StatusOK, appointments)
}

// Create inserts a new cita.
//
// @Summary      Create an appointment
// @Tags         citas
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        mascota_id  formData  string  true   "Pet id"
// @Param        doctor_id   formData  string  true   "Doctor id"
// @Param        cliente_id  formData  string  true   "Client id"
// @Param        fecha       formData  string  true   "Date (YYYY-MM-DD)"
// @Param        hora        formData  string  true   "Time (HH:MM)"
// @Param        servicio    formData  string  true   "Service type"
// @Param        notas       formData  string  false  "Notes"
// @Success      201  {object}  statusResponse
// @Failure      400  {object}  statusResponse
// @Failure      422  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /citas [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Success: false, Message: msgInvalidCita})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Success: false, Message: msgInvalidCita})
	}

	petID, err1 := parseID(req.PetID)
	doctorID, err2 := parseID(req.DoctorID)
	clientID, err3 := parseID(req.ClientID)
	if err1 != nil || err2 != nil || err3 != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Success: false, Message: msgInvalidCita})
	}

	err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		PetID:    petID,
		DoctorID: doctorID,
		ClientID: clientID,
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
		Notes:    req.Notes,
	})
	switch {
	case err == nil:
		metrics.AppointmentsCreatedTotal.Inc()
		return c.JSON(http.StatusCreated, statusResponse{Success: true, Message: msgAppointmentSaved})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, statusResponse{Success: false, Message: msgInvalidCita})
	case errors.Is(err, domain.ErrReferenceNotFound):
		return c.JSON(http.StatusUnprocessableEntity, statusResponse{Success: false, Message: msgUnknownReference})
	default:
		return c.JSON(http.StatusInternalServerError, statusResponse{Success: false, Message: msgServerError})
	}
}

// parseID parses a form field as a positive integer identity.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
