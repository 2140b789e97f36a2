package domain

import "time"

// AuditEventType classifies a security-relevant authentication event.
type AuditEventType string

const (
	AuditRoleMismatch AuditEventType = "role_mismatch"
	AuditLoginSuccess AuditEventType = "login_success"
	AuditLoginFailure AuditEventType = "login_failure"
)

// AuditEvent records an authentication outcome for the security trail.
// Passwords are never part of an event.
type AuditEvent struct {
	Type          AuditEventType `json:"type"`
	Email         string         `json:"email"`
	MandatedRole  Role           `json:"mandated_role,omitempty"`
	AttemptedRole Role           `json:"attempted_role,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}
