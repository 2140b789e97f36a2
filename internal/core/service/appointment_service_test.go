package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

type stubAppointmentRepo struct {
	rows       []domain.Appointment
	lastFilter ports.ListAppointmentsFilter
	listCalls  int
	inserted   []ports.CreateAppointmentRecord
	insertErr  error
	listErr    error
}

func (r *stubAppointmentRepo) List(_ context.Context, filter ports.ListAppointmentsFilter) ([]domain.Appointment, error) {
	r.listCalls++
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.rows, nil
}

func (r *stubAppointmentRepo) Insert(_ context.Context, rec ports.CreateAppointmentRecord) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, rec)
	return nil
}

func validCreateInput() ports.CreateAppointmentInput {
	return ports.CreateAppointmentInput{
		PetID:    3,
		DoctorID: 2,
		ClientID: 7,
		Date:     "2026-09-01",
		Time:     "10:30",
		Service:  "consulta",
		Notes:    "control anual",
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestAppointmentService_List_ClientScope(t *testing.T) {
	repo := &stubAppointmentRepo{rows: []domain.Appointment{{ID: 1, OwnerName: "Ana"}}}
	svc := NewAppointmentService(repo, zerolog.Nop())

	rows, err := svc.List(context.Background(), ports.ListAppointmentsInput{Role: domain.RoleClient, UserID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Scope != ports.ScopeOwnedBy || repo.lastFilter.UserID != 7 {
		t.Fatalf("expected owned-by filter for id 7, got %+v", repo.lastFilter)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestAppointmentService_List_DoctorScope(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewAppointmentService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListAppointmentsInput{Role: domain.RoleDoctor, UserID: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Scope != ports.ScopeAssignedTo || repo.lastFilter.UserID != 2 {
		t.Fatalf("expected assigned-to filter for id 2, got %+v", repo.lastFilter)
	}
}

func TestAppointmentService_List_AdminSeesAll(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewAppointmentService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListAppointmentsInput{Role: domain.RoleAdmin, UserID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Scope != ports.ScopeAll {
		t.Fatalf("expected unfiltered scope for admin, got %+v", repo.lastFilter)
	}
}

func TestAppointmentService_List_StoreFailure(t *testing.T) {
	repo := &stubAppointmentRepo{listErr: errors.New("connection reset")}
	svc := NewAppointmentService(repo, zerolog.Nop())

	_, err := svc.List(context.Background(), ports.ListAppointmentsInput{Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestAppointmentService_Create_Success(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewAppointmentService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	rec := repo.inserted[0]
	if rec.Status != domain.StatusScheduled {
		t.Errorf("new citas must start as scheduled, got %q", rec.Status)
	}
	if rec.ClientID != 7 || rec.DoctorID != 2 || rec.PetID != 3 {
		t.Errorf("identity fields not preserved: %+v", rec)
	}
}

func TestAppointmentService_Create_NonPositiveIDs(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewAppointmentService(repo, zerolog.Nop())

	for _, mutate := range []func(*ports.CreateAppointmentInput){
		func(in *ports.CreateAppointmentInput) { in.PetID = 0 },
		func(in *ports.CreateAppointmentInput) { in.DoctorID = -1 },
		func(in *ports.CreateAppointmentInput) { in.ClientID = 0 },
	} {
		input := validCreateInput()
		mutate(&input)
		if err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("no insert must happen on invalid input, got %d", len(repo.inserted))
	}
}

func TestAppointmentService_Create_MissingFields(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewAppointmentService(repo, zerolog.Nop())

	input := validCreateInput()
	input.Date = "  "
	if err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank fecha, got %v", err)
	}
}

func TestAppointmentService_Create_ReferenceNotFound(t *testing.T) {
	repo := &stubAppointmentRepo{insertErr: domain.ErrReferenceNotFound}
	svc := NewAppointmentService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), validCreateInput()); !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestAppointmentService_Create_StoreFailure(t *testing.T) {
	repo := &stubAppointmentRepo{insertErr: errors.New("deadlock detected")}
	svc := NewAppointmentService(repo, zerolog.Nop())

	if err := svc.Create(context.Background(), validCreateInput()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
