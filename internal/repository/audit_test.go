package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"task_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func auditCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestAuditAppend_FillsDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewAuditSQLite(db)

	// Generated id and timestamp are unknown; match shape and the
	// normalized action token.
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO audit_events (id, occurred_at, action, username, detail)
		VALUES (?, ?, ?, ?, ?)
	`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "LOGIN", "alice", "session started").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(auditCtx(t), models.AuditEvent{
		Action:   "  login ",
		Username: "alice",
		Detail:   "session started",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewAuditSQLite(db)
	mock.ExpectExec("INSERT INTO audit_events").WillReturnError(errors.New("down"))

	err = repo.Append(auditCtx(t), models.AuditEvent{Action: "LOGIN", Username: "x"})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected db error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditList_ActionFilter(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewAuditSQLite(db)

	occurred := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "occurred_at", "action", "username", "detail"}).
		AddRow("id-1", occurred, "TASK_EDIT", "bob", "task 2 completed")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, occurred_at, action, username, detail FROM audit_events WHERE action = ? ORDER BY occurred_at ASC`,
	)).
		WithArgs("TASK_EDIT").
		WillReturnRows(rows)

	events, err := repo.List(auditCtx(t), time.Time{}, time.Time{}, " task_edit ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Username != "bob" || events[0].Action != "TASK_EDIT" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if !events[0].OccurredAt.Equal(occurred) {
		t.Fatalf("timestamp changed: %v", events[0].OccurredAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditList_NoFilters(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewAuditSQLite(db)

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "action", "username", "detail"}).
		AddRow("id-1", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), "LOGIN", "admin", "session started").
		AddRow("id-2", time.Date(2026, 2, 1, 9, 5, 0, 0, time.UTC), "REPORT", "admin", "reports generated")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, occurred_at, action, username, detail FROM audit_events ORDER BY occurred_at ASC`,
	)).WillReturnRows(rows)

	events, err := repo.List(auditCtx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
