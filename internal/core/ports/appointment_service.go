package ports

import (
	"context"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// ListAppointmentsInput identifies the authenticated caller. The role decides
// the visibility scope: cliente sees owned citas, doctor sees assigned citas,
// admin sees everything.
type ListAppointmentsInput struct {
	Role   domain.Role
	UserID int
}

// CreateAppointmentInput carries a new cita. All identity fields must be
// positive integers.
type CreateAppointmentInput struct {
	PetID    int
	DoctorID int
	ClientID int
	Date     string
	Time     string
	Service  string
	Notes    string
}

// AppointmentService defines the role-scoped use cases over citas.
type AppointmentService interface {
	List(ctx context.Context, input ListAppointmentsInput) ([]domain.Appointment, error)
	Create(ctx context.Context, input CreateAppointmentInput) error
}
