package service

import (
	"testing"
	"time"

	"task_tracker/internal/models"
)

func statsFixture(t *testing.T) []models.Task {
	t.Helper()
	// Two completed, one uncompleted and overdue relative to 15-06-2026.
	return []models.Task{
		{Number: 1, Username: "alice", Title: "T1", Description: "D1",
			DueDate: day(t, "01-06-2026"), AssignedDate: day(t, "01-01-2026"), Completed: true},
		{Number: 2, Username: "bob", Title: "T2", Description: "D2",
			DueDate: day(t, "01-05-2026"), AssignedDate: day(t, "02-01-2026")},
		{Number: 3, Username: "alice", Title: "T3", Description: "D3",
			DueDate: day(t, "01-07-2026"), AssignedDate: day(t, "03-01-2026"), Completed: true},
	}
}

func TestStats_GlobalFigures_TruncatedPercentages(t *testing.T) {
	tasks := &mockTasks{LoadFn: func() ([]models.Task, error) { return statsFixture(t), nil }}
	creds := newFakeCreds([2]string{"admin", "pw"}, [2]string{"alice", "pw"}, [2]string{"bob", "pw"})
	svc := NewStatsService(tasks, creds)

	ov, _, err := svc.Compute(day(t, "15-06-2026"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if ov.Total != 3 || ov.Completed != 2 || ov.Uncompleted != 1 || ov.UncompletedOverdue != 1 {
		t.Fatalf("unexpected overview: %+v", ov)
	}
	// 1/3 truncates to 33, never 33.33 or 34.
	if ov.UncompletedPct != 33 {
		t.Fatalf("UncompletedPct = %d, want 33", ov.UncompletedPct)
	}
	if ov.OverduePct != 33 {
		t.Fatalf("OverduePct = %d, want 33", ov.OverduePct)
	}
}

func TestStats_Invariants(t *testing.T) {
	tasks := &mockTasks{LoadFn: func() ([]models.Task, error) { return statsFixture(t), nil }}
	creds := newFakeCreds([2]string{"alice", "pw"}, [2]string{"bob", "pw"})
	svc := NewStatsService(tasks, creds)

	ov, stats, err := svc.Compute(day(t, "15-06-2026"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if ov.Completed+ov.Uncompleted != ov.Total {
		t.Fatalf("completed(%d) + uncompleted(%d) != total(%d)", ov.Completed, ov.Uncompleted, ov.Total)
	}
	if ov.UncompletedOverdue > ov.Uncompleted {
		t.Fatalf("overdue(%d) > uncompleted(%d)", ov.UncompletedOverdue, ov.Uncompleted)
	}
	for _, st := range stats {
		if st.Completed+st.Uncompleted != st.Assigned {
			t.Errorf("%s: completed(%d) + uncompleted(%d) != assigned(%d)",
				st.Username, st.Completed, st.Uncompleted, st.Assigned)
		}
	}
}

func TestStats_PerUser_AsymmetricDenominators(t *testing.T) {
	tasks := &mockTasks{LoadFn: func() ([]models.Task, error) { return statsFixture(t), nil }}
	creds := newFakeCreds([2]string{"alice", "pw"}, [2]string{"bob", "pw"})
	svc := NewStatsService(tasks, creds)

	_, stats, err := svc.Compute(day(t, "15-06-2026"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	byName := map[string]models.UserStats{}
	for _, st := range stats {
		byName[st.Username] = st
	}

	alice := byName["alice"]
	// Assigned share is over the GLOBAL total: 2/3 -> 66.
	if alice.AssignedPct != 66 {
		t.Fatalf("alice AssignedPct = %d, want 66", alice.AssignedPct)
	}
	// Completion rate is within her own work: 2/2 -> 100.
	if alice.CompletedPct != 100 {
		t.Fatalf("alice CompletedPct = %d, want 100", alice.CompletedPct)
	}

	bob := byName["bob"]
	if bob.AssignedPct != 33 {
		t.Fatalf("bob AssignedPct = %d, want 33", bob.AssignedPct)
	}
	if bob.UncompletedPct != 100 || bob.OverduePct != 100 {
		t.Fatalf("bob rates = %d/%d, want 100/100", bob.UncompletedPct, bob.OverduePct)
	}
}

func TestStats_UserWithoutTasks_AllZero(t *testing.T) {
	tasks := &mockTasks{LoadFn: func() ([]models.Task, error) { return statsFixture(t), nil }}
	creds := newFakeCreds([2]string{"alice", "pw"}, [2]string{"bob", "pw"}, [2]string{"idle", "pw"})
	svc := NewStatsService(tasks, creds)

	_, stats, err := svc.Compute(day(t, "15-06-2026"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected stats for every registered user, got %d", len(stats))
	}

	idle := stats[2]
	if idle.Username != "idle" {
		t.Fatalf("expected credential-file order, got %q at position 2", idle.Username)
	}
	if idle.Assigned != 0 || idle.AssignedPct != 0 || idle.CompletedPct != 0 ||
		idle.UncompletedPct != 0 || idle.OverduePct != 0 {
		t.Fatalf("idle user figures must all be zero: %+v", idle)
	}
}

func TestStats_EmptyTaskSet_NoDivisionFault(t *testing.T) {
	svc := NewStatsService(&mockTasks{}, newFakeCreds([2]string{"admin", "pw"}))

	ov, stats, err := svc.Compute(time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if ov.Total != 0 || ov.UncompletedPct != 0 || ov.OverduePct != 0 {
		t.Fatalf("unexpected overview for empty set: %+v", ov)
	}
	if len(stats) != 1 || stats[0].AssignedPct != 0 {
		t.Fatalf("unexpected stats for empty set: %+v", stats)
	}
}

func TestStats_StaleAssignee_StillCounted(t *testing.T) {
	// A task whose user vanished from the credential file still counts
	// globally and gets its own appended row.
	orphan := []models.Task{{Number: 1, Username: "gone", Title: "T", Description: "D",
		DueDate: day(t, "01-01-2099"), AssignedDate: day(t, "01-01-2026")}}
	tasks := &mockTasks{LoadFn: func() ([]models.Task, error) { return orphan, nil }}
	svc := NewStatsService(tasks, newFakeCreds([2]string{"admin", "pw"}))

	ov, stats, err := svc.Compute(day(t, "15-06-2026"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if ov.Total != 1 {
		t.Fatalf("orphan task not counted: %+v", ov)
	}
	if len(stats) != 2 || stats[1].Username != "gone" || stats[1].Assigned != 1 {
		t.Fatalf("expected appended row for stale assignee: %+v", stats)
	}
}
