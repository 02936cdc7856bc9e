package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"task_tracker/internal/models"
)

// Default entry written when the credential file does not exist yet.
const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "password"
)

// CredentialFile keeps the username→password mapping in memory, in file
// order, and rewrites the whole file on every change.
type CredentialFile struct {
	path   string
	order  []string
	byName map[string]string
}

func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{
		path:   path,
		byName: make(map[string]string),
	}
}

// Ensure implementation of Credentials interface at compile time.
var _ Credentials = (*CredentialFile)(nil)

// Load reads the credential file. A missing file is seeded with the
// default admin entry and persisted immediately.
func (r *CredentialFile) Load() error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.Set(defaultAdminUser, defaultAdminPassword)
		return r.SaveAll()
	}
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", r.path, err)
	}

	r.order = nil
	r.byName = make(map[string]string)
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) != 2 {
			return &models.ParseError{
				File: r.path,
				Line: i + 1,
				Err:  fmt.Errorf("expected 2 fields, got %d", len(fields)),
			}
		}
		r.Set(fields[0], fields[1])
	}
	return nil
}

// SaveAll rewrites the whole credential file from memory, preserving
// insertion order. No partial-write protection; a crash mid-write can
// leave a truncated file.
func (r *CredentialFile) SaveAll() error {
	lines := make([]string, 0, len(r.order))
	for _, username := range r.order {
		lines = append(lines, username+";"+r.byName[username])
	}
	if err := os.WriteFile(r.path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("write credentials %q: %w", r.path, err)
	}
	return nil
}

// Set adds or replaces an entry in memory only.
func (r *CredentialFile) Set(username, password string) {
	if _, ok := r.byName[username]; !ok {
		r.order = append(r.order, username)
	}
	r.byName[username] = password
}

func (r *CredentialFile) Exists(username string) bool {
	_, ok := r.byName[username]
	return ok
}

func (r *CredentialFile) Password(username string) (string, bool) {
	password, ok := r.byName[username]
	return password, ok
}

// Usernames returns all usernames in file order, so that report output
// stays deterministic.
func (r *CredentialFile) Usernames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
