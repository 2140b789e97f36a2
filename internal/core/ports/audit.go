package ports

import (
	"context"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

// AuditRepository persists security events to the append-only trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

// AuditService processes queued security events and exposes the trail to the
// admin surface.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
