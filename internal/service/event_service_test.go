package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/repository/memory"
)

func newEventFixture(t *testing.T) (*EventService, *memory.Store, *models.User, *models.User) {
	t.Helper()

	store := memory.NewStore()
	owner := &models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(owner))
	other := &models.User{FirstName: "Bob", LastName: "Birch", Email: "bob@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(other))

	return NewEventService(store.Events()), store, owner, other
}

func createEventReq() models.CreateEventRequest {
	return models.CreateEventRequest{
		Title:       "Launch Party",
		Description: "Product launch with demos",
		Location:    "Convention Center",
		EventDate:   time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateEventDefaults(t *testing.T) {
	svc, _, owner, _ := newEventFixture(t)

	event, err := svc.CreateEvent(owner.ID, createEventReq())
	require.NoError(t, err)

	assert.Equal(t, models.EventTypeOther, event.EventType)
	assert.Equal(t, models.EventStatusUpcoming, event.Status)
	assert.Equal(t, owner.ID, event.UserID)
}

func TestUpdateEventOwnerOnly(t *testing.T) {
	svc, store, owner, other := newEventFixture(t)

	event, err := svc.CreateEvent(owner.ID, createEventReq())
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.UpdateEvent(event.ID, other.ID, models.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, models.ErrNotOwner)

	stored, err := store.Events().GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch Party", stored.Title)
}

func TestUpdateEventPartial(t *testing.T) {
	svc, _, owner, _ := newEventFixture(t)

	event, err := svc.CreateEvent(owner.ID, createEventReq())
	require.NoError(t, err)

	completed := models.EventStatusCompleted
	updated, err := svc.UpdateEvent(event.ID, owner.ID, models.UpdateEventRequest{Status: &completed})
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusCompleted, updated.Status)
	assert.Equal(t, "Launch Party", updated.Title)
	assert.Equal(t, "Convention Center", updated.Location)
	assert.True(t, event.EventDate.Equal(updated.EventDate))
}

func TestDeleteEventOwnerOnly(t *testing.T) {
	svc, _, owner, other := newEventFixture(t)

	event, err := svc.CreateEvent(owner.ID, createEventReq())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEvent(event.ID, other.ID), models.ErrNotOwner)
	require.NoError(t, svc.DeleteEvent(event.ID, owner.ID))

	_, err = svc.GetEvent(event.ID)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestListEventsFiltersAndEmbedsOwner(t *testing.T) {
	svc, _, owner, _ := newEventFixture(t)

	_, err := svc.CreateEvent(owner.ID, createEventReq())
	require.NoError(t, err)

	wedding := createEventReq()
	wedding.Title = "Spring Wedding"
	wedding.EventType = models.EventTypeWedding
	wedding.EventDate = time.Date(2026, time.April, 18, 0, 0, 0, 0, time.UTC)
	_, err = svc.CreateEvent(owner.ID, wedding)
	require.NoError(t, err)

	all, err := svc.ListEvents(models.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Sorted by event date ascending.
	assert.Equal(t, "Spring Wedding", all[0].Title)
	require.NotNil(t, all[0].Owner)
	assert.Equal(t, owner.Email, all[0].Owner.Email)

	weddings, err := svc.ListEvents(models.EventFilter{EventType: models.EventTypeWedding})
	require.NoError(t, err)
	require.Len(t, weddings, 1)
	assert.Equal(t, "Spring Wedding", weddings[0].Title)
}
