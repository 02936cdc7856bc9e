package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task_tracker/internal/logger"
	"task_tracker/internal/models"
	"task_tracker/internal/repository"
)

// Domain errors for auth flows. Login keeps ErrUserNotFound and
// ErrInvalidPassword distinct; presentation may collapse them.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserExists      = errors.New("user already exists")
	ErrEmptyField      = errors.New("required field is empty")
)

// AuthService verifies and registers users against the credential file.
type AuthService struct {
	creds repository.Credentials
	audit repository.Audit
	log   *logger.Logger
}

func NewAuthService(creds repository.Credentials, audit repository.Audit, log *logger.Logger) *AuthService {
	return &AuthService{creds: creds, audit: audit, log: log}
}

// Login compares the supplied password with the stored one. Plaintext
// comparison is the credential file's contract, not an oversight.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	stored, ok := s.creds.Password(username)
	if !ok {
		return ErrUserNotFound
	}
	if stored != password {
		return ErrInvalidPassword
	}
	s.record(ctx, models.AuditLogin, username, "session started")
	return nil
}

// Register adds a new user and rewrites the whole credential file.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyField
	}
	if s.creds.Exists(username) {
		return ErrUserExists
	}

	s.creds.Set(username, password)
	if err := s.creds.SaveAll(); err != nil {
		return fmt.Errorf("register %q: %w", username, err)
	}
	s.record(ctx, models.AuditRegister, username, "user registered")
	return nil
}

// Exists reports whether the username is registered. Used to validate
// assignment and reassignment targets before touching the task file.
func (s *AuthService) Exists(username string) bool {
	return s.creds.Exists(username)
}

// record appends an audit event. Audit is advisory; failures are logged
// and never block the operation that triggered them.
func (s *AuthService) record(ctx context.Context, action, username, detail string) {
	err := s.audit.Append(ctx, models.AuditEvent{
		Action:   action,
		Username: username,
		Detail:   detail,
	})
	if err != nil {
		s.log.Warnw("audit append failed", "action", action, "err", err)
	}
}
