package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// AppointmentService implements role-scoped listing and creation of citas.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, logger: logger}
}

// List returns the appointments visible to the caller. Clients see citas they
// own, doctors see citas assigned to them, every other role sees all rows.
// Ordering (fecha desc, hora desc) is guaranteed by the repository.
func (s *AppointmentService) List(ctx context.Context, input ports.ListAppointmentsInput) ([]domain.Appointment, error) {
	filter := ports.ListAppointmentsFilter{Scope: ports.ScopeAll}
	switch input.Role {
	case domain.RoleClient:
		filter = ports.ListAppointmentsFilter{Scope: ports.ScopeOwnedBy, UserID: input.UserID}
	case domain.RoleDoctor:
		filter = ports.ListAppointmentsFilter{Scope: ports.ScopeAssignedTo, UserID: input.UserID}
	}

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("rol", string(input.Role)).Msg("failed to list appointments")
		return nil, domain.ErrStoreUnavailable
	}
	return appointments, nil
}

// Create inserts a new cita with status scheduled. Identity fields must be
// positive; referential integrity is enforced by the store and surfaces as
// domain.ErrReferenceNotFound.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) error {
	if input.PetID <= 0 || input.DoctorID <= 0 || input.ClientID <= 0 {
		return fmt.Errorf("%w: mascota_id, doctor_id and cliente_id must be positive integers", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" || strings.TrimSpace(input.Service) == "" {
		return fmt.Errorf("%w: fecha, hora and servicio are required", domain.ErrInvalidInput)
	}

	err := s.repo.Insert(ctx, ports.CreateAppointmentRecord{
		PetID:    input.PetID,
		DoctorID: input.DoctorID,
		ClientID: input.ClientID,
		Date:     input.Date,
		Time:     input.Time,
		Service:  input.Service,
		Notes:    input.Notes,
		Status:   domain.StatusScheduled,
	})
	if err != nil {
		if errors.Is(err, domain.ErrReferenceNotFound) {
			return err
		}
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return domain.ErrStoreUnavailable
	}

	s.logger.Info().
		Int("cliente_id", input.ClientID).
		Int("doctor_id", input.DoctorID).
		Str("servicio", input.Service).
		Msg("appointment created")
	return nil
}
