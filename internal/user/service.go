package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/session"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

const (
	minPasswordLength = 6
	resetCodeTTL      = time.Hour
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	GuestLogin(ctx context.Context) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, code string) (*AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error

	// ResolveActor implements auth.ActorResolver.
	ResolveActor(ctx context.Context, token string) (*auth.Actor, error)
}

type service struct {
	repo     Repository
	sessions session.Manager
	oauth    GoogleExchanger
}

func NewService(repo Repository, sessions session.Manager, oauth GoogleExchanger) Service {
	return &service{repo: repo, sessions: sessions, oauth: oauth}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(dto RegisterDTO) error {
	email := normalizeEmail(dto.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apperror.Validation("a valid email address is required")
	}
	if len(dto.Password) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if strings.TrimSpace(dto.Name) == "" {
		return apperror.Validation("name is required")
	}
	return nil
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if err := validateRegistration(dto); err != nil {
		return nil, err
	}
	email := normalizeEmail(dto.Email)

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Validation("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	u := &User{
		ID:           util.NewID("user"),
		Email:        email,
		Name:         strings.TrimSpace(dto.Name),
		PasswordHash: &hashStr,
		Role:         auth.RoleUser,
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.Infof("Registered user %s", u.ID)
	return s.startSession(ctx, u, session.TTLRegistered, false)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	u, err := s.repo.FindByEmail(normalizeEmail(dto.Email))
	if err != nil {
		return nil, err
	}
	// A uniform failure for unknown email, password-less account (OAuth or
	// guest) and wrong password, so login probing learns nothing.
	if u == nil || u.PasswordHash == nil {
		return nil, apperror.ErrUnauthenticated
	}
	if bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(dto.Password)) != nil {
		return nil, apperror.ErrUnauthenticated
	}

	return s.startSession(ctx, u, session.TTLRegistered, false)
}

func (s *service) GuestLogin(ctx context.Context) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(GuestUserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			ID:    GuestUserID,
			Email: GuestEmail,
			Name:  GuestName,
			Role:  auth.RoleGuest,
		}
		if err := s.repo.Create(u); err != nil {
			// A concurrent guest login may have created it first.
			if existing, ferr := s.repo.FindByID(GuestUserID); ferr == nil && existing != nil {
				u = existing
			} else {
				log.WithError(err).Error("Failed to create shared guest user")
				return nil, err
			}
		}
	}

	return s.startSession(ctx, u, session.TTLGuest, true)
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if code == "" {
		return nil, apperror.Validation("authorization code is required")
	}

	info, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, apperror.ErrUnauthenticated
	}

	email := normalizeEmail(info.Email)
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			ID:      util.NewID("user"),
			Email:   email,
			Name:    info.Name,
			Picture: optional(info.Picture),
			Role:    auth.RoleUser,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user from Google login")
			return nil, err
		}
		log.Infof("Created user %s from Google login", u.ID)
	}

	return s.startSession(ctx, u, session.TTLOAuth, false)
}

// ForgotPassword returns the generated code so the handler can surface it in
// environments with no mail delivery. The caller must not reveal whether the
// email exists.
func (s *service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}

	code, err := newResetCode()
	if err != nil {
		return "", err
	}

	if err := s.repo.DeleteResetsByEmail(email); err != nil {
		return "", err
	}
	reset := &PasswordReset{
		ID:        util.NewID("reset"),
		Email:     email,
		Token:     code,
		ExpiresAt: time.Now().UTC().Add(resetCodeTTL),
	}
	if err := s.repo.CreateReset(reset); err != nil {
		return "", err
	}

	return code, nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := config.WithContext(ctx)

	reset, err := s.repo.FindValidReset(token, time.Now().UTC())
	if err != nil {
		return err
	}
	if reset == nil {
		return apperror.Validation("invalid or expired reset code")
	}
	if len(newPassword) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	updated, err := s.repo.UpdatePasswordHash(reset.Email, string(hash))
	if err != nil {
		return err
	}
	if updated == 0 {
		return apperror.Validation("failed to update password")
	}

	if err := s.repo.DeleteReset(token); err != nil {
		log.WithError(err).Warn("Failed to delete used reset code")
	}

	// Containment: every session issued before the reset stops working.
	u, err := s.repo.FindByEmail(reset.Email)
	if err != nil {
		return err
	}
	if u != nil {
		if err := s.sessions.InvalidateAllForUser(ctx, u.ID); err != nil {
			return err
		}
	}

	log.Infof("Password reset completed for %s", reset.Email)
	return nil
}

func (s *service) ResolveActor(ctx context.Context, token string) (*auth.Actor, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	actor := &auth.Actor{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
	if u.Picture != nil {
		actor.Picture = *u.Picture
	}
	return actor, nil
}

func (s *service) startSession(ctx context.Context, u *User, ttl time.Duration, isGuest bool) (*AuthResponse, error) {
	token, err := s.sessions.Create(ctx, u.ID, ttl)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		UserID:       u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Picture:      u.Picture,
		Role:         u.Role,
		IsGuest:      isGuest,
		SessionToken: token,
		CookieMaxAge: int(ttl.Seconds()),
	}, nil
}

func newResetCode() (string, error) {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String(), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
