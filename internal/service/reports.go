package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"task_tracker/internal/logger"
	"task_tracker/internal/models"
	"task_tracker/internal/repository"
)

// ReportService renders statistics. On-screen display and file reports
// share the same writers, so their figures cannot drift apart.
type ReportService struct {
	stats Stats
	audit repository.Audit
	log   *logger.Logger
	paths ReportPaths
}

func NewReportService(stats Stats, audit repository.Audit, log *logger.Logger, paths ReportPaths) *ReportService {
	return &ReportService{stats: stats, audit: audit, log: log, paths: paths}
}

// WriteOverview renders the global task overview in the fixed
// label/value layout.
func (s *ReportService) WriteOverview(w io.Writer, ov models.Overview) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Task Overview\n\n")
	fmt.Fprintf(tw, "Total number of tasks:\t%d\n", ov.Total)
	fmt.Fprintf(tw, "Total number of tasks completed:\t%d\n", ov.Completed)
	fmt.Fprintf(tw, "Total number of tasks uncompleted:\t%d\n", ov.Uncompleted)
	fmt.Fprintf(tw, "Percentage of tasks uncompleted:\t%d%%\n", ov.UncompletedPct)
	fmt.Fprintf(tw, "Total number of tasks uncompleted and overdue:\t%d\n", ov.UncompletedOverdue)
	fmt.Fprintf(tw, "Percentage of tasks overdue:\t%d%%\n", ov.OverduePct)
	return tw.Flush()
}

// WriteUserStats renders the per-user statistics, one block per user.
func (s *ReportService) WriteUserStats(w io.Writer, totalTasks int, stats []models.UserStats) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "User Statistics:\n\n")
	fmt.Fprintf(tw, "Total number of users:\t%d\n", len(stats))
	fmt.Fprintf(tw, "Total number of tasks:\t%d\n", totalTasks)
	for _, st := range stats {
		fmt.Fprintf(tw, "\nUsername:\t%s\n", st.Username)
		fmt.Fprintf(tw, "Total tasks assigned:\t%d\n", st.Assigned)
		fmt.Fprintf(tw, "Percentage of tasks assigned:\t%d%%\n", st.AssignedPct)
		fmt.Fprintf(tw, "Total tasks completed:\t%d\n", st.Completed)
		fmt.Fprintf(tw, "Percentage of tasks assigned and completed:\t%d%%\n", st.CompletedPct)
		fmt.Fprintf(tw, "Total tasks uncompleted:\t%d\n", st.Uncompleted)
		fmt.Fprintf(tw, "Percentage of tasks assigned and uncompleted:\t%d%%\n", st.UncompletedPct)
		fmt.Fprintf(tw, "Total tasks uncompleted and overdue:\t%d\n", st.UncompletedOverdue)
		fmt.Fprintf(tw, "Percentage of tasks assigned, uncompleted, and overdue:\t%d%%\n", st.OverduePct)
	}
	return tw.Flush()
}

// Generate computes the figures once and writes both report files.
// A failed file write is reported back but does not end the session;
// the other file is still attempted.
func (s *ReportService) Generate(ctx context.Context, now time.Time) error {
	ov, stats, err := s.stats.Compute(now)
	if err != nil {
		return err
	}

	var errs []error

	var overview bytes.Buffer
	if err := s.WriteOverview(&overview, ov); err == nil {
		if err := os.WriteFile(s.paths.TaskOverview, overview.Bytes(), 0644); err != nil {
			errs = append(errs, fmt.Errorf("write %q: %w", s.paths.TaskOverview, err))
		}
	} else {
		errs = append(errs, err)
	}

	var users bytes.Buffer
	if err := s.WriteUserStats(&users, ov.Total, stats); err == nil {
		if err := os.WriteFile(s.paths.UserOverview, users.Bytes(), 0644); err != nil {
			errs = append(errs, fmt.Errorf("write %q: %w", s.paths.UserOverview, err))
		}
	} else {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		err := s.audit.Append(ctx, models.AuditEvent{
			Action: models.AuditReport,
			Detail: fmt.Sprintf("reports generated: %s, %s", s.paths.TaskOverview, s.paths.UserOverview),
		})
		if err != nil {
			s.log.Warnw("audit append failed", "action", models.AuditReport, "err", err)
		}
	}
	return errors.Join(errs...)
}
