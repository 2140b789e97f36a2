package handler

import "github.com/veterinario/clinic-system/internal/core/domain"

// loginRequest accepts the form-encoded fields the clinic frontend submits;
// JSON is accepted too for API clients.
type loginRequest struct {
	Email    string `form:"email"    json:"email"`
	Password string `form:"password" json:"password"`
	Role     string `form:"rol"      json:"rol"`
}

// loginResponse is the login envelope: success flag, user-facing message, and
// on success the public user fields plus the opaque session token.
type loginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"usuario,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// User-facing messages. Authentication failures share one generic message so
// responses cannot be used to enumerate accounts or roles.
const (
	msgFieldsRequired   = "Todos los campos son obligatorios"
	msgAuthFailed       = "Email o contraseña incorrectos"
	msgServerError      = "Error del servidor. Intente nuevamente."
	msgLogoutDone       = "Sesión cerrada"
	msgAppointmentSaved = "Cita creada exitosamente"
	msgInvalidCita      = "Datos de la cita inválidos"
	msgUnknownReference = "La mascota, el doctor o el cliente no existen"
)
