package service

import (
	"time"

	"task_tracker/internal/models"
	"task_tracker/internal/repository"
)

// StatsService aggregates task figures. It only reads; the task file is
// owned by TaskService.
type StatsService struct {
	tasks repository.Tasks
	creds repository.Credentials
}

func NewStatsService(tasks repository.Tasks, creds repository.Credentials) *StatsService {
	return &StatsService{tasks: tasks, creds: creds}
}

// pct is the truncating percentage used everywhere: whole-number result,
// 0 when the denominator is 0.
func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return part * 100 / whole
}

// Compute walks the task set once and produces the global overview plus
// one UserStats per credential-store user, in file order. Users with no
// tasks are included with all-zero figures. A task assigned to a
// username missing from the credential file still counts; its user is
// appended after the registered ones.
func (s *StatsService) Compute(now time.Time) (models.Overview, []models.UserStats, error) {
	tasks, err := s.tasks.Load()
	if err != nil {
		return models.Overview{}, nil, err
	}

	usernames := s.creds.Usernames()
	index := make(map[string]int, len(usernames))
	stats := make([]models.UserStats, 0, len(usernames))
	for _, username := range usernames {
		index[username] = len(stats)
		stats = append(stats, models.UserStats{Username: username})
	}

	var ov models.Overview
	for _, task := range tasks {
		i, ok := index[task.Username]
		if !ok {
			i = len(stats)
			index[task.Username] = i
			stats = append(stats, models.UserStats{Username: task.Username})
		}

		ov.Total++
		stats[i].Assigned++
		if task.Completed {
			ov.Completed++
			stats[i].Completed++
			continue
		}
		ov.Uncompleted++
		stats[i].Uncompleted++
		if task.OverdueAt(now) {
			ov.UncompletedOverdue++
			stats[i].UncompletedOverdue++
		}
	}

	ov.UncompletedPct = pct(ov.Uncompleted, ov.Total)
	ov.OverduePct = pct(ov.UncompletedOverdue, ov.Total)

	for i := range stats {
		st := &stats[i]
		// AssignedPct is the user's share of ALL tasks; the other three
		// are rates within the user's own assigned count.
		st.AssignedPct = pct(st.Assigned, ov.Total)
		st.CompletedPct = pct(st.Completed, st.Assigned)
		st.UncompletedPct = pct(st.Uncompleted, st.Assigned)
		st.OverduePct = pct(st.UncompletedOverdue, st.Assigned)
	}

	return ov, stats, nil
}
