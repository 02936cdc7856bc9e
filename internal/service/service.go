package service

import (
	"context"
	"io"
	"time"

	"task_tracker/internal/logger"
	"task_tracker/internal/models"
	"task_tracker/internal/repository"
)

// Auth handles login and registration against the credential store.
type Auth interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password string) error
	Exists(username string) bool
}

// TaskManager exposes task creation, listing, and the three permitted
// mutations on open tasks.
type TaskManager interface {
	Add(ctx context.Context, username, title, description string, due, now time.Time) (models.Task, error)
	All() ([]models.Task, error)
	For(username string) ([]models.OwnedTask, error)
	Reassign(ctx context.Context, owned models.OwnedTask, newUser string, now time.Time) (models.Task, error)
	Reschedule(ctx context.Context, owned models.OwnedTask, due, now time.Time) (models.Task, error)
	Complete(ctx context.Context, owned models.OwnedTask, confirm string, now time.Time) (bool, models.Task, error)
}

// Stats computes the global and per-user figures in one pass.
// Display and report generation both go through Compute so the two can
// never disagree.
type Stats interface {
	Compute(now time.Time) (models.Overview, []models.UserStats, error)
}

// Reports renders statistics to writers and generates the two report files.
type Reports interface {
	Generate(ctx context.Context, now time.Time) error
	WriteOverview(w io.Writer, ov models.Overview) error
	WriteUserStats(w io.Writer, totalTasks int, stats []models.UserStats) error
}

// AuditLog exposes the append-only action trail with filtering access.
type AuditLog interface {
	List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error)
}

// ReportPaths names the two report output files.
type ReportPaths struct {
	TaskOverview string
	UserOverview string
}

// Service aggregates all sub-services.
type Service struct {
	Auth
	TaskManager
	Stats
	Reports
	AuditLog
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger, paths ReportPaths) *Service {
	stats := NewStatsService(repos.Tasks, repos.Credentials)
	return &Service{
		Auth:        NewAuthService(repos.Credentials, repos.Audit, log),
		TaskManager: NewTaskService(repos.Tasks, repos.Credentials, repos.Audit, log),
		Stats:       stats,
		Reports:     NewReportService(stats, repos.Audit, log, paths),
		AuditLog:    NewAuditLogService(repos.Audit),
	}
}
