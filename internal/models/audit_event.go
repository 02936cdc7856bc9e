package models

import "time"

// Audit actions recorded for a session.
const (
	AuditLogin    = "LOGIN"
	AuditRegister = "REGISTER"
	AuditTaskAdd  = "TASK_ADD"
	AuditTaskEdit = "TASK_EDIT"
	AuditReport   = "REPORT"
)

// AuditEvent is a single append-only audit trail entry.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Action     string    `json:"action"` // LOGIN | REGISTER | TASK_ADD | TASK_EDIT | REPORT
	Username   string    `json:"username"`
	Detail     string    `json:"detail"`
}
