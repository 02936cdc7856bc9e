package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"task_tracker/internal/models"

	"github.com/google/uuid"
)

// AuditSQLite appends session actions to the audit_events table.
type AuditSQLite struct {
	db *sql.DB
}

func NewAuditSQLite(db *sql.DB) *AuditSQLite { return &AuditSQLite{db: db} }

var _ Audit = (*AuditSQLite)(nil)

// Append inserts a new event. Empty EventID and zero OccurredAt are
// filled in with a fresh uuid and UTC now.
func (r *AuditSQLite) Append(ctx context.Context, e models.AuditEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, occurred_at, action, username, detail)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format("2006-01-02 15:04:05"),
		strings.ToUpper(strings.TrimSpace(e.Action)),
		e.Username,
		e.Detail,
	)
	return err
}

// List returns events filtered by [from, to] (inclusive) and/or action,
// oldest first.
func (r *AuditSQLite) List(ctx context.Context, from, to time.Time, action string) ([]models.AuditEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if action = strings.ToUpper(strings.TrimSpace(action)); action != "" {
		conds = append(conds, "action = ?")
		args = append(args, action)
	}

	q := `SELECT id, occurred_at, action, username, detail FROM audit_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AuditEvent
	for rows.Next() {
		var ev models.AuditEvent
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Action, &ev.Username, &ev.Detail); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
