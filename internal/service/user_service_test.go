package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/repository/memory"
	"github.com/polishedevents/backend/pkg/bcrypt"
)

func newUserFixture(t *testing.T) (*UserService, *memory.Store, *models.User) {
	t.Helper()

	store := memory.NewStore()

	hash, err := bcrypt.HashPassword("secret123")
	require.NoError(t, err)
	user := &models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  hash,
		Phone:     "555-1234",
	}
	require.NoError(t, store.Users().Create(user))

	return NewUserService(store.Users(), zap.NewNop()), store, user
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, _, user := newUserFixture(t)

	err := svc.ChangePassword(user.ID, models.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	assert.ErrorIs(t, err, models.ErrWrongPassword)
}

func TestChangePasswordConfirmationMismatch(t *testing.T) {
	svc, _, user := newUserFixture(t)

	err := svc.ChangePassword(user.ID, models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestChangePasswordSuccess(t *testing.T) {
	svc, store, user := newUserFixture(t)

	err := svc.ChangePassword(user.ID, models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	require.NoError(t, err)

	stored, err := store.Users().GetByID(user.ID)
	require.NoError(t, err)
	assert.Error(t, bcrypt.ComparePassword(stored.Password, "secret123"))
	assert.NoError(t, bcrypt.ComparePassword(stored.Password, "newsecret"))
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, user := newUserFixture(t)

	bio := "Event planner"
	updated, err := svc.UpdateProfile(user.ID, models.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "Event planner", updated.Bio)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "555-1234", updated.Phone)

	// An explicit empty string clears the field.
	empty := ""
	updated, err = svc.UpdateProfile(user.ID, models.UpdateProfileRequest{Phone: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Phone)
	assert.Equal(t, "Event planner", updated.Bio)
}

func TestDeleteAccountCascades(t *testing.T) {
	svc, store, user := newUserFixture(t)

	event := &models.Event{
		Title:       "Orphaned Event",
		Description: "d",
		Location:    "l",
		EventDate:   time.Now(),
		UserID:      user.ID,
	}
	require.NoError(t, store.Events().Create(event))

	require.NoError(t, svc.DeleteAccount(user.ID))

	_, err := store.Users().GetByID(user.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	events, err := store.Events().ListByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}
