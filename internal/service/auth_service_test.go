package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/repository/memory"
	jwtPkg "github.com/polishedevents/backend/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	store := memory.NewStore()
	return NewAuthService(store.Users(), nil, zap.NewNop()), store
}

func registerReq() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newAuthFixture(t)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	_, err = svc.Register(registerReq())
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	// Email matching is case-insensitive.
	req := registerReq()
	req.Email = "ADA@Example.com"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	users, err := store.Users().ListAll()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, store := newAuthFixture(t)

	resp, err := svc.Register(registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	stored, err := store.Users().GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestLoginTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)

	registered, err := svc.Register(registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	claims, err := jwtPkg.ValidateToken(resp.Token)
	require.NoError(t, err)

	userID, err := jwtPkg.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	// Unknown email is indistinguishable from a bad password.
	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerifyEmail(t *testing.T) {
	svc, store := newAuthFixture(t)

	resp, err := svc.Register(registerReq())
	require.NoError(t, err)

	token, err := svc.generateVerificationToken(resp.User.Email)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(token))

	user, err := store.Users().GetByID(resp.User.ID)
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)

	// Verifying again is a no-op.
	require.NoError(t, svc.VerifyEmail(token))
}

func TestVerifyEmailRejectsLoginToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Register(registerReq())
	require.NoError(t, err)

	// A login token lacks the email_verification purpose claim.
	err = svc.VerifyEmail(resp.Token)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}
