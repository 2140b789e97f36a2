package domain

import (
	"errors"
	"time"
)

// Role determines which appointments an authenticated user may see. The wire
// values are the Spanish labels the clinic frontend submits on login.
type Role string

const (
	RoleClient Role = "cliente"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorizedEmail  = errors.New("email not authorized")
	ErrRoleMismatch       = errors.New("role does not match assigned role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// User models a clinic actor: a pet owner, a doctor, or an administrator.
// The role is assigned once and must match the configured email binding;
// only active users may authenticate.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"telefono"`
	Address      string    `json:"direccion"`
	Role         Role      `json:"rol"`
	RegisteredAt time.Time `json:"fecha_registro"`
	Active       bool      `json:"activo"`
}

// Public returns a copy safe to bind to a session or serialize to a client,
// with credential material stripped.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
