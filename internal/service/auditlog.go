package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"task_tracker/internal/models"
	"task_tracker/internal/repository"
)

// AuditFilter narrows an audit listing. Zero times and an empty action
// mean no filtering on that dimension.
type AuditFilter struct {
	From   time.Time
	To     time.Time
	Action string
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// AuditLogService exposes read access to the session audit trail.
type AuditLogService struct {
	audit repository.Audit
}

func NewAuditLogService(audit repository.Audit) *AuditLogService {
	return &AuditLogService{audit: audit}
}

func (s *AuditLogService) List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error) {
	from, to := normalizeToUTC(f.From), normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.audit.List(ctx, from, to, strings.ToUpper(strings.TrimSpace(f.Action)))
}

// normalizeToUTC returns t in UTC, preserving zero values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
