package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/spec-kit/playplanner-service/internal/auth"
	"github.com/spec-kit/playplanner-service/internal/config"
	"github.com/spec-kit/playplanner-service/internal/domain"
	"github.com/spec-kit/playplanner-service/internal/events"
	"github.com/spec-kit/playplanner-service/internal/observability"
	"github.com/spec-kit/playplanner-service/internal/repository"
	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

var (
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotFound       = errors.New("role not found")
)

// invalidCredentialsMessage is shared by the unknown-email and wrong-password
// paths so callers cannot tell them apart.
const invalidCredentialsMessage = "Invalid email or password"

// RegisterInput carries a signup request.
type RegisterInput struct {
	Email       string
	FullName    string
	Phone       string
	RoleID      *int64
	Password    string
	BillingInfo bool
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users         repository.UserRepository
	roles         repository.RoleRepository
	tokens        *auth.TokenCodec
	dispatcher    events.Dispatcher
	metrics       *observability.Metrics
	logger        *zap.Logger
	now           func() time.Time
	bcryptCost    int
	defaultRoleID int64
	phoneRegion   string
	dummyHash     string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	RoleRepo   repository.RoleRepository
	Tokens     *auth.TokenCodec
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Clock      func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	dummy, err := auth.HashPassword("playplanner-timing-equaliser", cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	defaultRole := cfg.Auth.DefaultRoleID
	if defaultRole <= 0 {
		defaultRole = 1
	}
	return &AuthService{
		users:         deps.UserRepo,
		roles:         deps.RoleRepo,
		tokens:        deps.Tokens,
		dispatcher:    deps.Dispatcher,
		metrics:       deps.Metrics,
		logger:        logger,
		now:           now,
		bcryptCost:    cfg.Auth.BcryptCost,
		defaultRoleID: defaultRole,
		phoneRegion:   cfg.App.PhoneDefaultRegion,
		dummyHash:     dummy,
	}, nil
}

// RegisterUser creates a credential record and returns a token for it.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterInput) (string, time.Time, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", time.Time{}, duplicateEmail(email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", time.Time{}, err
	}

	roleID := s.defaultRoleID
	if in.RoleID != nil {
		roleID = *in.RoleID
	}
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, apperrors.NewAuthenticationFailed("ROLE_NOT_FOUND", "Role not found", ErrRoleNotFound)
		}
		return "", time.Time{}, err
	}

	phone, err := s.normalizePhone(in.Phone)
	if err != nil {
		return "", time.Time{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", time.Time{}, apperrors.NewValidationError([]string{"password: must be at most 72 bytes"})
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		Phone:        phone,
		RoleID:       role.ID,
		Role:         role.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", time.Time{}, duplicateEmail(email)
		}
		return "", time.Time{}, err
	}

	token, exp, err := s.issue(user, "signup")
	if err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.New(events.EventUserRegistered, user.ID, user.ID, s.now(), events.UserRegisteredPayload{
		Email:            user.Email,
		BillingRequested: in.BillingInfo,
	}))
	return token, exp, nil
}

// Authenticate verifies credentials and returns a fresh token.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, err
		}
		_ = auth.ComparePassword(s.dummyHash, password)
		return "", time.Time{}, invalidCredentials()
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Error("stored password hash unusable", zap.Int64("user_id", user.ID), zap.Error(err))
		}
		return "", time.Time{}, invalidCredentials()
	}

	return s.issue(user, "signin")
}

func (s *AuthService) issue(user *domain.User, flow string) (string, time.Time, error) {
	token, exp, err := s.tokens.Issue(auth.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, s.now())
	if err != nil {
		return "", time.Time{}, err
	}
	s.metrics.RecordTokenIssued(flow)
	return token, exp, nil
}

func (s *AuthService) normalizePhone(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	num, err := phonenumbers.Parse(raw, s.phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return nil, apperrors.NewValidationError([]string{"phone: must be a valid phone number"})
	}
	formatted := phonenumbers.Format(num, phonenumbers.E164)
	return &formatted, nil
}

func (s *AuthService) publish(ctx context.Context, e events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, e); err != nil {
		s.logger.Warn("event handlers failed", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

func duplicateEmail(email string) error {
	return apperrors.NewBadRequest("DUPLICATE_EMAIL", "User already exists with email: "+email, ErrDuplicateEmail)
}

func invalidCredentials() error {
	return apperrors.NewAuthenticationFailed("INVALID_CREDENTIALS", invalidCredentialsMessage, ErrInvalidCredentials)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
