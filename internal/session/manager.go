package session

import (
	"context"
	"time"

	"github.com/examtrack/examtrack-api/internal/config"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

// Manager issues and resolves opaque session tokens. A missing or expired
// token is not an error, it is the anonymous state; callers decide whether
// anonymous access is acceptable.
type Manager interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Invalidate(ctx context.Context, token string) error
	InvalidateAllForUser(ctx context.Context, userID string) error
}

type manager struct {
	repo Repository
	now  func() time.Time
}

func NewManager(repo Repository) Manager {
	return &manager{repo: repo, now: time.Now}
}

func (m *manager) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	s := &Session{
		Token:     util.NewSessionToken(),
		UserID:    userID,
		ExpiresAt: m.now().UTC().Add(ttl),
	}
	if err := m.repo.Create(s); err != nil {
		return "", err
	}
	return s.Token, nil
}

// Resolve returns the owning user id, or "" for unknown or expired tokens.
// Expired sessions are deleted on first access.
func (m *manager) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	s, err := m.repo.FindByToken(token)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}

	if !s.ExpiresAt.After(m.now().UTC()) {
		if err := m.repo.DeleteByToken(token); err != nil {
			config.WithContext(ctx).WithError(err).Warn("Failed to delete expired session")
		}
		return "", nil
	}

	return s.UserID, nil
}

func (m *manager) Invalidate(ctx context.Context, token string) error {
	return m.repo.DeleteByToken(token)
}

func (m *manager) InvalidateAllForUser(ctx context.Context, userID string) error {
	deleted, err := m.repo.DeleteByUserID(userID)
	if err != nil {
		return err
	}
	if deleted > 0 {
		config.WithContext(ctx).Infof("Invalidated %d sessions for user %s", deleted, userID)
	}
	return nil
}
