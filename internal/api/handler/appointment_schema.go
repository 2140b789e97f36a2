package handler

// createAppointmentRequest accepts the form-encoded cita fields. Identity
// fields arrive as strings and must parse as positive integers; that check
// lives in the handler so a malformed id never reaches the service.
type createAppointmentRequest struct {
	PetID    string `form:"mascota_id" json:"mascota_id" validate:"required"`
	DoctorID string `form:"doctor_id"  json:"doctor_id"  validate:"required"`
	ClientID string `form:"cliente_id" json:"cliente_id" validate:"required"`
	Date     string `form:"fecha"      json:"fecha"      validate:"required"`
	Time     string `form:"hora"       json:"hora"       validate:"required"`
	Service  string `form:"servicio"   json:"servicio"   validate:"required"`
	Notes    string `form:"notas"      json:"notas"`
}

// statusResponse is the success/failure envelope for write operations.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
