package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// PostgresUserRepository reads clinic users with raw parameterized SQL.
type PostgresUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Emails are unique case-insensitively; the comparison lowers both sides so a
// mixed-case stored email still authenticates against the normalized input.
const findActiveUserQuery = `
	SELECT id, nombre, email, password_hash, telefono, direccion, rol, fecha_registro, activo
	FROM usuarios
	WHERE LOWER(email) = LOWER($1) AND rol = $2 AND activo = TRUE`

func (r *PostgresUserRepository) FindActiveUser(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	var u domain.User
	var rol string
	err := r.db.QueryRowContext(ctx, findActiveUserQuery, email, string(role)).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Phone, &u.Address, &rol, &u.RegisteredAt, &u.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find active user: %w", err)
	}

	u.Role = domain.Role(rol)
	return &u, nil
}
