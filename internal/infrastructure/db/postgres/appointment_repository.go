package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

// pqForeignKeyViolation is the Postgres error class for FK constraint failures.
const pqForeignKeyViolation = "23503"

// PostgresAppointmentRepository persists citas with raw parameterized SQL.
// List resolves the pet, owner, and doctor foreign keys to display names in a
// single joined query.
type PostgresAppointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{db: db}
}

const listBaseQuery = `
	SELECT c.id,
	       m.nombre  AS mascota_nombre,
	       u1.nombre AS propietario,
	       u2.nombre AS doctor,
	       to_char(c.fecha, 'YYYY-MM-DD'),
	       to_char(c.hora, 'HH24:MI'),
	       c.servicio, c.estado, c.notas
	FROM citas c
	JOIN mascotas m  ON c.mascota_id = m.id
	JOIN usuarios u1 ON c.cliente_id = u1.id
	JOIN usuarios u2 ON c.doctor_id  = u2.id`

// listQuery builds the scoped SELECT. Results are always newest first,
// ordered by fecha then hora, both descending.
func listQuery(filter ports.ListAppointmentsFilter) (string, []any) {
	query := listBaseQuery
	var args []any
	switch filter.Scope {
	case ports.ScopeOwnedBy:
		query += " WHERE c.cliente_id = $1"
		args = append(args, filter.UserID)
	case ports.ScopeAssignedTo:
		query += " WHERE c.doctor_id = $1"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY c.fecha DESC, c.hora DESC"
	return query, args
}

func (r *PostgresAppointmentRepository) List(ctx context.Context, filter ports.ListAppointmentsFilter) ([]domain.Appointment, error) {
	query, args := listQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		var estado string
		if err := rows.Scan(
			&a.ID, &a.PetName, &a.OwnerName, &a.DoctorName,
			&a.Date, &a.Time, &a.Service, &estado, &a.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		a.Status = domain.AppointmentStatus(estado)
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *PostgresAppointmentRepository) Insert(ctx context.Context, rec ports.CreateAppointmentRecord) error {
	const query = `
		INSERT INTO citas (mascota_id, doctor_id, cliente_id, fecha, hora, servicio, estado, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.PetID, rec.DoctorID, rec.ClientID,
		rec.Date, rec.Time, rec.Service, string(rec.Status), rec.Notes,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return fmt.Errorf("%w: %s", domain.ErrReferenceNotFound, pqErr.Constraint)
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}
