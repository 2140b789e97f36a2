package domain

import "errors"

// AppointmentStatus represents the lifecycle state of a cita.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

var ErrReferenceNotFound = errors.New("referenced record not found")

// Appointment is a clinic visit (cita) as seen by callers: the pet, owner,
// and doctor foreign keys are already resolved to display names by the store
// join. JSON field names keep the original clinic wire format.
type Appointment struct {
	ID         int               `json:"id"`
	PetName    string            `json:"mascota_nombre"`
	OwnerName  string            `json:"propietario"`
	DoctorName string            `json:"doctor"`
	Date       string            `json:"fecha"`
	Time       string            `json:"hora"`
	Service    string            `json:"servicio"`
	Status     AppointmentStatus `json:"estado"`
	Notes      string            `json:"notas"`
}
