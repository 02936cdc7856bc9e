package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"task_tracker/internal/models"
)

// TaskFile is the flat-file task store. It holds no in-memory state:
// callers read the current list with Load and write back with SaveAll
// or UpdateOne.
type TaskFile struct {
	path string
}

func NewTaskFile(path string) *TaskFile { return &TaskFile{path: path} }

var _ Tasks = (*TaskFile)(nil)

// Load parses every line of the task file. Numbers are assigned from
// line position, ignoring whatever index the file carries. A missing
// file is created empty.
func (r *TaskFile) Load() ([]models.Task, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := os.WriteFile(r.path, nil, 0644); werr != nil {
			return nil, fmt.Errorf("create tasks %q: %w", r.path, werr)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks %q: %w", r.path, err)
	}

	var tasks []models.Task
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		task, err := models.ParseTaskLine(line)
		if err != nil {
			return nil, &models.ParseError{File: r.path, Line: i + 1, Err: err}
		}
		task.Number = len(tasks) + 1
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// SaveAll rewrites the whole task file, renumbering sequentially from 1.
// The rewrite is not atomic; a crash mid-write can truncate the file.
func (r *TaskFile) SaveAll(tasks []models.Task) error {
	var b strings.Builder
	for i, task := range tasks {
		task.Number = i + 1
		b.WriteString(task.Line())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write tasks %q: %w", r.path, err)
	}
	return nil
}

// UpdateOne rewrites only the line whose leading index field equals
// task.Number. Every other line is written back byte-for-byte.
func (r *TaskFile) UpdateOne(task models.Task) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read tasks %q: %w", r.path, err)
	}

	want := fmt.Sprintf("%d", task.Number)
	lines := strings.Split(string(data), "\n")
	found := false
	for i, line := range lines {
		if line == "" {
			continue
		}
		idx, _, _ := strings.Cut(line, ";")
		if strings.TrimSpace(idx) == want {
			lines[i] = task.Line()
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("update task %d in %q: record not found", task.Number, r.path)
	}

	if err := os.WriteFile(r.path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("write tasks %q: %w", r.path, err)
	}
	return nil
}
