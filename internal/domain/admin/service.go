package admin

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "brightfuture/internal/pkg/jwt"
)

type Service struct {
	repo Repository
	jwt  *jwtsvc.Service
}

func NewService(repo Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Login verifies credentials against the stored bcrypt hash and issues
// a signed token. Both a missing account and a bad password report the
// same error.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrAdminNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(account.Username, account.Role)
	if err != nil {
		return "", err
	}

	s.audit(ctx, account.Username, "login", "")
	return token, nil
}

// Logout only records the action; the token stays valid until expiry.
func (s *Service) Logout(ctx context.Context, username string) {
	s.audit(ctx, username, "logout", "")
}

// Audit records an admin action from another domain, best effort.
func (s *Service) Audit(ctx context.Context, username, action, detail string) {
	s.audit(ctx, username, action, detail)
}

func (s *Service) audit(ctx context.Context, username, action, detail string) {
	entry := &AuditEntry{
		Username: username,
		Action:   action,
		Detail:   detail,
		At:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.RecordAudit(ctx, entry); err != nil {
		log.Printf("admin: audit write failed for %s %s: %v", username, action, err)
	}
}

func (s *Service) AuditLog(ctx context.Context, limit int64) ([]AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.ListAudit(ctx, limit)
}

// EnsureDefault creates the initial admin account when none exists.
// Called at seed time, never on the request path.
func (s *Service) EnsureDefault(ctx context.Context, username, password string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}
