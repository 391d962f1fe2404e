package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/playplanner-service/internal/auth"
	"github.com/spec-kit/playplanner-service/internal/config"
	"github.com/spec-kit/playplanner-service/internal/domain"
	"github.com/spec-kit/playplanner-service/internal/events"
	"github.com/spec-kit/playplanner-service/internal/repository"
	apperrors "github.com/spec-kit/playplanner-service/pkg/util/errorutil"
)

const serviceTestSecret = "service-test-secret-long-enough-for-hs256"

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type authFixture struct {
	svc      *AuthService
	users    *memoryUsers
	tokens   *auth.TokenCodec
	received []events.Event
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := config.Config{
		App:  config.AppConfig{PhoneDefaultRegion: "AU"},
		Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost, DefaultRoleID: 1},
	}
	tokens, err := auth.NewTokenCodec(serviceTestSecret, 8*time.Hour)
	require.NoError(t, err)

	f := &authFixture{users: newMemoryUsers(), tokens: tokens}
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, e events.Event) error {
		f.received = append(f.received, e)
		return nil
	})

	f.svc, err = NewAuthService(cfg, AuthDependencies{
		UserRepo:   f.users,
		RoleRepo:   memoryRoles{},
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Clock:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return f
}

func TestRegisterUserIssuesTokenForNewAccount(t *testing.T) {
	f := newAuthFixture(t)

	token, exp, err := f.svc.RegisterUser(context.Background(), RegisterInput{
		Email:       "a@b.com",
		FullName:    "Ana Banana",
		Password:    "longenough1",
		BillingInfo: true,
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(8*time.Hour), exp)

	id, err := f.tokens.Verify(token, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", id.Email)
	assert.Equal(t, domain.RolePlayer, id.Role)
	assert.Equal(t, "Ana Banana", id.FullName)

	stored, err := f.users.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough1", stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "longenough1"))

	require.Len(t, f.received, 1)
	payload, ok := f.received[0].Payload.(events.UserRegisteredPayload)
	require.True(t, ok)
	assert.True(t, payload.BillingRequested)
}

func TestRegisterUserHonoursRequestedRole(t *testing.T) {
	f := newAuthFixture(t)
	coach := int64(3)

	token, _, err := f.svc.RegisterUser(context.Background(), RegisterInput{
		Email: "coach@b.com", FullName: "C", Password: "longenough1", RoleID: &coach,
	})
	require.NoError(t, err)

	id, err := f.tokens.Verify(token, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCoach, id.Role)
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	in := RegisterInput{Email: "a@b.com", FullName: "Ana", Password: "longenough1"}

	_, _, err := f.svc.RegisterUser(context.Background(), in)
	require.NoError(t, err)

	in.Email = " A@B.com "
	_, _, err = f.svc.RegisterUser(context.Background(), in)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, apperrors.TitleBadRequest, de.Title)
	assert.Equal(t, []string{"User already exists with email: a@b.com"}, de.Messages)
	assert.Equal(t, 1, f.users.count())
}

func TestRegisterUserTreatsInsertConflictAsDuplicate(t *testing.T) {
	f := newAuthFixture(t)
	f.users.createErr = repository.ErrDuplicate

	_, _, err := f.svc.RegisterUser(context.Background(), RegisterInput{Email: "a@b.com", Password: "longenough1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterUserUnknownRole(t *testing.T) {
	f := newAuthFixture(t)
	missing := int64(99)

	_, _, err := f.svc.RegisterUser(context.Background(), RegisterInput{
		Email: "a@b.com", Password: "longenough1", RoleID: &missing,
	})
	require.ErrorIs(t, err, ErrRoleNotFound)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.TitleAuthenticationFailed, de.Title)
	assert.Equal(t, []string{"Role not found"}, de.Messages)
	assert.Zero(t, f.users.count())
}

func TestRegisterUserNormalisesPhone(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.RegisterUser(context.Background(), RegisterInput{
		Email: "a@b.com", Password: "longenough1", Phone: "0412 345 678",
	})
	require.NoError(t, err)

	stored, err := f.users.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored.Phone)
	assert.Equal(t, "+61412345678", *stored.Phone)

	_, _, err = f.svc.RegisterUser(context.Background(), RegisterInput{
		Email: "b@b.com", Password: "longenough1", Phone: "12",
	})
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, apperrors.TitleValidation, de.Title)
}

func TestRegisterUserRejectsPasswordOverBcryptLimit(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.RegisterUser(context.Background(), RegisterInput{
		Email: "a@b.com", FullName: "Ana", Password: strings.Repeat("p", 80),
	})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, apperrors.TitleValidation, de.Title)
	assert.Equal(t, []string{"password: must be at most 72 bytes"}, de.Messages)
	assert.Zero(t, f.users.count())
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture(t)
	_, _, err := f.svc.RegisterUser(context.Background(), RegisterInput{
		Email: "a@b.com", FullName: "Ana", Password: "longenough1",
	})
	require.NoError(t, err)

	token, _, err := f.svc.Authenticate(context.Background(), "A@b.com", "longenough1")
	require.NoError(t, err)
	id, err := f.tokens.Verify(token, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", id.Email)

	_, _, wrongPassword := f.svc.Authenticate(context.Background(), "a@b.com", "wrong-password")
	_, _, unknownEmail := f.svc.Authenticate(context.Background(), "nobody@b.com", "longenough1")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, apperrors.ToDomainError(wrongPassword).Messages, apperrors.ToDomainError(unknownEmail).Messages)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(unknownEmail).HTTPStatus)
}

func TestAuthenticatePropagatesStoreFailures(t *testing.T) {
	f := newAuthFixture(t)
	f.svc.users = failingUsers{newMemoryUsers()}

	_, _, err := f.svc.Authenticate(context.Background(), "a@b.com", "longenough1")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

var errStoreDown = errors.New("store down")

type failingUsers struct{ *memoryUsers }

func (failingUsers) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, errStoreDown
}
