package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for due and assigned dates (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// taskFieldCount is the number of ;-separated fields in a task line.
const taskFieldCount = 7

// Task is one record of the task file.
//
// Number is the task's 1-based line position in storage. It is recomputed
// on every full read or write and must never be treated as stable identity.
type Task struct {
	Number       int       `json:"number"`
	Username     string    `json:"username"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"due_date"`
	AssignedDate time.Time `json:"assigned_date"`
	Completed    bool      `json:"completed"`
}

// OwnedTask is a task inside one user's filtered view. ListNumber is the
// 1-based position within that view and is the only valid edit selector;
// it is a separate field so it cannot be confused with Task.Number.
type OwnedTask struct {
	Task
	ListNumber int `json:"task_number"`
}

// EditableAt reports whether the task is still open for mutation:
// not completed and due strictly after now. A completed or overdue
// task is locked for good.
func (t Task) EditableAt(now time.Time) bool {
	return !t.Completed && t.DueDate.After(now)
}

// OverdueAt reports whether the task is uncompleted with a due date
// on or before now.
func (t Task) OverdueAt(now time.Time) bool {
	return !t.Completed && !t.DueDate.After(now)
}

// Line renders the task as a storage line, leading with Number.
// Completed is written as the literal Yes/No tokens.
func (t Task) Line() string {
	completed := "No"
	if t.Completed {
		completed = "Yes"
	}
	return strings.Join([]string{
		strconv.Itoa(t.Number),
		t.Username,
		t.Title,
		t.Description,
		t.DueDate.Format(DateLayout),
		t.AssignedDate.Format(DateLayout),
		completed,
	}, ";")
}

// ParseTaskLine decodes one storage line. The leading index field is
// ignored; callers assign Number from the line's actual position.
func ParseTaskLine(line string) (Task, error) {
	fields := strings.Split(line, ";")
	if len(fields) != taskFieldCount {
		return Task{}, fmt.Errorf("expected %d fields, got %d", taskFieldCount, len(fields))
	}

	due, err := time.Parse(DateLayout, fields[4])
	if err != nil {
		return Task{}, fmt.Errorf("due date %q: %w", fields[4], err)
	}
	assigned, err := time.Parse(DateLayout, fields[5])
	if err != nil {
		return Task{}, fmt.Errorf("assigned date %q: %w", fields[5], err)
	}

	return Task{
		Username:     fields[1],
		Title:        fields[2],
		Description:  fields[3],
		DueDate:      due,
		AssignedDate: assigned,
		Completed:    fields[6] == "Yes",
	}, nil
}
