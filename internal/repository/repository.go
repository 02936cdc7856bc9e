package repository

import (
	"context"
	"database/sql"
	"time"

	"task_tracker/internal/models"
)

// Credentials is the flat-file username→password store.
// Load seeds a default admin entry when the file is absent.
type Credentials interface {
	Load() error
	SaveAll() error
	Set(username, password string)
	Exists(username string) bool
	Password(username string) (string, bool)
	Usernames() []string
}

// Tasks is the flat-file task store. Load renumbers records by line
// position; SaveAll is a full rewrite; UpdateOne rewrites a single line
// in place, leaving every other line untouched.
type Tasks interface {
	Load() ([]models.Task, error)
	SaveAll(tasks []models.Task) error
	UpdateOne(task models.Task) error
}

// Audit is the append-only trail of session actions.
type Audit interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, action string) ([]models.AuditEvent, error)
}

type Repository struct {
	Credentials Credentials
	Tasks       Tasks
	Audit       Audit
}

func NewRepository(usersPath, tasksPath string, db *sql.DB) *Repository {
	return &Repository{
		Credentials: NewCredentialFile(usersPath),
		Tasks:       NewTaskFile(tasksPath),
		Audit:       NewAuditSQLite(db),
	}
}
