package ports

import (
	"context"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// AppointmentScope restricts which citas a caller may see.
type AppointmentScope int

const (
	// ScopeAll returns every appointment (admin view).
	ScopeAll AppointmentScope = iota
	// ScopeOwnedBy returns appointments whose pet owner is UserID.
	ScopeOwnedBy
	// ScopeAssignedTo returns appointments whose doctor is UserID.
	ScopeAssignedTo
)

// ListAppointmentsFilter carries the visibility scope computed by the service
// layer from the caller's authenticated role and id.
type ListAppointmentsFilter struct {
	Scope  AppointmentScope
	UserID int // owner or doctor id; ignored for ScopeAll
}

// CreateAppointmentRecord carries a new cita row. Identity fields reference
// existing rows; the store surfaces domain.ErrReferenceNotFound when a
// foreign key does not resolve.
type CreateAppointmentRecord struct {
	PetID    int
	DoctorID int
	ClientID int
	Date     string
	Time     string
	Service  string
	Notes    string
	Status   domain.AppointmentStatus
}

// AppointmentRepository defines persistence operations for citas.
type AppointmentRepository interface {
	// List returns appointments matching filter, joined with pet, owner, and
	// doctor display names, ordered by date descending then time descending.
	List(ctx context.Context, filter ListAppointmentsFilter) ([]domain.Appointment, error)
	Insert(ctx context.Context, rec CreateAppointmentRecord) error
}
