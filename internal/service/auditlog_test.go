package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"task_tracker/internal/models"
)

func TestAuditLog_List_NormalizesAction(t *testing.T) {
	audit := &mockAudit{ListFn: func(_ context.Context, _, _ time.Time, action string) ([]models.AuditEvent, error) {
		return []models.AuditEvent{{Action: action}}, nil
	}}
	svc := NewAuditLogService(audit)

	events, err := svc.List(context.Background(), AuditFilter{Action: "  task_edit "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 || events[0].Action != "TASK_EDIT" {
		t.Fatalf("action not normalized: %+v", events)
	}
	if len(audit.lists) != 1 || audit.lists[0] != "TASK_EDIT" {
		t.Fatalf("repo received %v", audit.lists)
	}
}

func TestAuditLog_List_InvalidRange(t *testing.T) {
	svc := NewAuditLogService(&mockAudit{})

	from := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.List(context.Background(), AuditFilter{From: from, To: to})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange, got %v", err)
	}
}
