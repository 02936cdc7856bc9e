package service

import (
	"context"
	"time"

	"task_tracker/internal/logger"
	"task_tracker/internal/models"
)

// testLog returns the shared quiet logger for service tests.
func testLog() *logger.Logger {
	return logger.Get(logger.ErrorLevel)
}

// fakeCreds is a small in-memory credential store.
type fakeCreds struct {
	order   []string
	byName  map[string]string
	saveErr error
	saves   int
}

func newFakeCreds(pairs ...[2]string) *fakeCreds {
	f := &fakeCreds{byName: make(map[string]string)}
	for _, p := range pairs {
		f.Set(p[0], p[1])
	}
	return f
}

func (f *fakeCreds) Load() error { return nil }

func (f *fakeCreds) SaveAll() error {
	f.saves++
	return f.saveErr
}

func (f *fakeCreds) Set(username, password string) {
	if _, ok := f.byName[username]; !ok {
		f.order = append(f.order, username)
	}
	f.byName[username] = password
}

func (f *fakeCreds) Exists(username string) bool {
	_, ok := f.byName[username]
	return ok
}

func (f *fakeCreds) Password(username string) (string, bool) {
	pw, ok := f.byName[username]
	return pw, ok
}

func (f *fakeCreds) Usernames() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// mockTasks records calls and delegates to optional function fields.
type mockTasks struct {
	LoadFn      func() ([]models.Task, error)
	SaveAllFn   func([]models.Task) error
	UpdateOneFn func(models.Task) error

	saved   [][]models.Task
	updated []models.Task
}

func (m *mockTasks) Load() ([]models.Task, error) {
	if m.LoadFn != nil {
		return m.LoadFn()
	}
	return nil, nil
}

func (m *mockTasks) SaveAll(tasks []models.Task) error {
	m.saved = append(m.saved, tasks)
	if m.SaveAllFn != nil {
		return m.SaveAllFn(tasks)
	}
	return nil
}

func (m *mockTasks) UpdateOne(task models.Task) error {
	m.updated = append(m.updated, task)
	if m.UpdateOneFn != nil {
		return m.UpdateOneFn(task)
	}
	return nil
}

// mockAudit records appended events.
type mockAudit struct {
	AppendFn func(context.Context, models.AuditEvent) error
	ListFn   func(context.Context, time.Time, time.Time, string) ([]models.AuditEvent, error)

	events []models.AuditEvent
	lists  []string // actions passed to List
}

func (m *mockAudit) Append(ctx context.Context, e models.AuditEvent) error {
	m.events = append(m.events, e)
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *mockAudit) List(ctx context.Context, from, to time.Time, action string) ([]models.AuditEvent, error) {
	m.lists = append(m.lists, action)
	if m.ListFn != nil {
		return m.ListFn(ctx, from, to, action)
	}
	return nil, nil
}
