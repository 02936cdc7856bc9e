package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task_tracker/internal/logger"
	"task_tracker/internal/models"
	"task_tracker/internal/repository"
)

// Domain errors for task mutation flows.
var (
	ErrTaskLocked   = errors.New("task completed or overdue, can't be edited")
	ErrTaskNotFound = errors.New("task not found")
)

// completeToken is the only confirmation input that marks a task done.
const completeToken = "yes"

// TaskService owns the task list: it is the sole writer of the task file.
type TaskService struct {
	tasks repository.Tasks
	creds repository.Credentials
	audit repository.Audit
	log   *logger.Logger
}

func NewTaskService(tasks repository.Tasks, creds repository.Credentials, audit repository.Audit, log *logger.Logger) *TaskService {
	return &TaskService{tasks: tasks, creds: creds, audit: audit, log: log}
}

// Add validates and appends a new task, then rewrites the whole file.
// The assignee must already be registered.
func (s *TaskService) Add(ctx context.Context, username, title, description string, due, now time.Time) (models.Task, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return models.Task{}, ErrEmptyField
	}
	if !s.creds.Exists(username) {
		return models.Task{}, ErrUserNotFound
	}

	list, err := s.tasks.Load()
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Number:       len(list) + 1,
		Username:     username,
		Title:        title,
		Description:  description,
		DueDate:      due,
		AssignedDate: now,
	}
	list = append(list, task)

	if err := s.tasks.SaveAll(list); err != nil {
		return models.Task{}, err
	}
	s.record(ctx, models.AuditTaskAdd, username, fmt.Sprintf("task %d added: %s", task.Number, task.Title))
	return task, nil
}

// All returns every task in storage order.
func (s *TaskService) All() ([]models.Task, error) {
	return s.tasks.Load()
}

// For returns the given user's tasks, each annotated with its 1-based
// position within this filtered view. That list number is session-local
// and is the only selector edit operations accept.
func (s *TaskService) For(username string) ([]models.OwnedTask, error) {
	list, err := s.tasks.Load()
	if err != nil {
		return nil, err
	}

	var owned []models.OwnedTask
	for _, task := range list {
		if task.Username != username {
			continue
		}
		owned = append(owned, models.OwnedTask{
			Task:       task,
			ListNumber: len(owned) + 1,
		})
	}
	return owned, nil
}

// Reassign moves an open task to another registered user.
func (s *TaskService) Reassign(ctx context.Context, owned models.OwnedTask, newUser string, now time.Time) (models.Task, error) {
	if !owned.EditableAt(now) {
		return owned.Task, ErrTaskLocked
	}
	if !s.creds.Exists(newUser) {
		return owned.Task, ErrUserNotFound
	}

	owned.Username = newUser
	if err := s.tasks.UpdateOne(owned.Task); err != nil {
		return owned.Task, err
	}
	s.record(ctx, models.AuditTaskEdit, newUser, fmt.Sprintf("task %d reassigned to %s", owned.Number, newUser))
	return owned.Task, nil
}

// Reschedule replaces the due date of an open task. The date arrives
// already parsed; format re-prompting is the caller's loop.
func (s *TaskService) Reschedule(ctx context.Context, owned models.OwnedTask, due, now time.Time) (models.Task, error) {
	if !owned.EditableAt(now) {
		return owned.Task, ErrTaskLocked
	}

	owned.DueDate = due
	if err := s.tasks.UpdateOne(owned.Task); err != nil {
		return owned.Task, err
	}
	s.record(ctx, models.AuditTaskEdit, owned.Username,
		fmt.Sprintf("task %d rescheduled to %s", owned.Number, due.Format(models.DateLayout)))
	return owned.Task, nil
}

// Complete marks an open task done, but only when the operator confirms
// with the exact token "Yes" (case-insensitive). Anything else is a
// no-op and reports changed=false.
func (s *TaskService) Complete(ctx context.Context, owned models.OwnedTask, confirm string, now time.Time) (bool, models.Task, error) {
	if !owned.EditableAt(now) {
		return false, owned.Task, ErrTaskLocked
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), completeToken) {
		return false, owned.Task, nil
	}

	owned.Completed = true
	if err := s.tasks.UpdateOne(owned.Task); err != nil {
		return false, owned.Task, err
	}
	s.record(ctx, models.AuditTaskEdit, owned.Username, fmt.Sprintf("task %d completed", owned.Number))
	return true, owned.Task, nil
}

func (s *TaskService) record(ctx context.Context, action, username, detail string) {
	err := s.audit.Append(ctx, models.AuditEvent{
		Action:   action,
		Username: username,
		Detail:   detail,
	})
	if err != nil {
		s.log.Warnw("audit append failed", "action", action, "err", err)
	}
}
