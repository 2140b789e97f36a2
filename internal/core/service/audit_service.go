package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/veterinario/clinic-system/internal/core/domain"
	"github.com/veterinario/clinic-system/internal/core/ports"
)

const defaultRecentLimit = 100

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService backed by the given repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single queued security event.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("insert security event: %w", err)
	}
	return nil
}

// Recent returns the newest events for the admin trail view.
func (s *auditService) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > defaultRecentLimit {
		limit = defaultRecentLimit
	}
	events, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list security events")
		return nil, domain.ErrStoreUnavailable
	}
	return events, nil
}
