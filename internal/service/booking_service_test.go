package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/repository/memory"
)

type bookingFixture struct {
	svc     *BookingService
	store   *memory.Store
	owner   *models.User
	other   *models.User
	event   *models.Event
	catalog *models.Service
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := memory.NewStore()

	owner := &models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(owner))
	other := &models.User{FirstName: "Bob", LastName: "Birch", Email: "bob@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(other))

	event := &models.Event{
		Title:       "Summer Wedding",
		Description: "Garden ceremony",
		EventType:   models.EventTypeWedding,
		Location:    "Riverside Manor",
		EventDate:   time.Now().Add(30 * 24 * time.Hour),
		Status:      models.EventStatusUpcoming,
		UserID:      owner.ID,
	}
	require.NoError(t, store.Events().Create(event))

	catalog := &models.Service{
		Name:        "Gourmet Catering",
		Description: "Seasonal menus",
		Category:    models.ServiceCategoryCatering,
		Price:       45,
		IsActive:    true,
	}
	require.NoError(t, store.Services().Create(catalog))

	return &bookingFixture{
		svc:     NewBookingService(store.Bookings(), store.Events(), store.Services(), zap.NewNop()),
		store:   store,
		owner:   owner,
		other:   other,
		event:   event,
		catalog: catalog,
	}
}

func (f *bookingFixture) createEventBooking(t *testing.T) *models.Booking {
	t.Helper()
	booking, err := f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType: models.BookingTypeEvent,
		EventID:     &f.event.ID,
		Notes:       "window seats please",
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBookingRequiresDiscriminatorReference(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType: models.BookingTypeEvent,
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType: models.BookingTypeService,
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{})
	assert.ErrorIs(t, err, models.ErrValidation)

	bookings, err := f.store.Bookings().ListAll()
	require.NoError(t, err)
	assert.Empty(t, bookings, "failed creations must not persist anything")
}

func TestCreateBookingRejectsDanglingReference(t *testing.T) {
	f := newBookingFixture(t)

	missing := uuid.New()
	_, err := f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType: models.BookingTypeEvent,
		EventID:     &missing,
	})
	assert.ErrorIs(t, err, models.ErrEventNotFound)

	_, err = f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType: models.BookingTypeService,
		ServiceID:   &missing,
	})
	assert.ErrorIs(t, err, models.ErrServiceNotFound)

	bookings, err := f.store.Bookings().ListAll()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateBookingStoresOnlyMatchingReference(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType: models.BookingTypeEvent,
		EventID:     &f.event.ID,
		ServiceID:   &f.catalog.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, booking.EventID)
	assert.Equal(t, f.event.ID, *booking.EventID)
	assert.Nil(t, booking.ServiceID, "the mismatched reference is nulled")
	assert.Equal(t, 1, booking.Quantity, "quantity defaults to 1")
	assert.Equal(t, models.BookingStatusPending, booking.Status)
}

func TestUpdateBookingForeignUserForbidden(t *testing.T) {
	f := newBookingFixture(t)
	booking := f.createEventBooking(t)

	newNotes := "hijacked"
	_, err := f.svc.UpdateBooking(booking.ID, f.other.ID, models.UpdateBookingRequest{Notes: &newNotes})
	assert.ErrorIs(t, err, models.ErrNotOwner)

	stored, err := f.store.Bookings().GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "window seats please", stored.Notes)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestCancelBookingForeignUserForbidden(t *testing.T) {
	f := newBookingFixture(t)
	booking := f.createEventBooking(t)

	err := f.svc.CancelBooking(booking.ID, f.other.ID)
	assert.ErrorIs(t, err, models.ErrNotOwner)

	stored, err := f.store.Bookings().GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestCancelBookingIdempotent(t *testing.T) {
	f := newBookingFixture(t)
	booking := f.createEventBooking(t)

	require.NoError(t, f.svc.CancelBooking(booking.ID, f.owner.ID))
	require.NoError(t, f.svc.CancelBooking(booking.ID, f.owner.ID))

	stored, err := f.store.Bookings().GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}

func TestCancelledBookingCannotChangeStatus(t *testing.T) {
	f := newBookingFixture(t)
	booking := f.createEventBooking(t)

	require.NoError(t, f.svc.CancelBooking(booking.ID, f.owner.ID))

	pending := models.BookingStatusPending
	_, err := f.svc.UpdateBooking(booking.ID, f.owner.ID, models.UpdateBookingRequest{Status: &pending})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateBookingPartial(t *testing.T) {
	f := newBookingFixture(t)

	quantity := 3
	price := 140.0
	preferred := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	booking, err := f.svc.CreateBooking(f.owner.ID, models.CreateBookingRequest{
		BookingType:   models.BookingTypeService,
		ServiceID:     &f.catalog.ID,
		Quantity:      &quantity,
		TotalPrice:    &price,
		PreferredDate: &preferred,
		Notes:         "original notes",
	})
	require.NoError(t, err)

	newNotes := "updated notes"
	updated, err := f.svc.UpdateBooking(booking.ID, f.owner.ID, models.UpdateBookingRequest{Notes: &newNotes})
	require.NoError(t, err)

	assert.Equal(t, "updated notes", updated.Notes)
	assert.Equal(t, 3, updated.Quantity)
	require.NotNil(t, updated.TotalPrice)
	assert.Equal(t, 140.0, *updated.TotalPrice)
	require.NotNil(t, updated.PreferredDate)
	assert.True(t, preferred.Equal(*updated.PreferredDate))
	assert.Equal(t, models.BookingStatusPending, updated.Status)

	// Clearing notes with an explicit empty string is applied too.
	empty := ""
	updated, err = f.svc.UpdateBooking(booking.ID, f.owner.ID, models.UpdateBookingRequest{Notes: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Notes)
}

func TestGetUserBookingsEmbedsRelated(t *testing.T) {
	f := newBookingFixture(t)
	f.createEventBooking(t)

	bookings, err := f.svc.GetUserBookings(f.owner.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	require.NotNil(t, bookings[0].Owner)
	assert.Equal(t, f.owner.Email, bookings[0].Owner.Email)
	require.NotNil(t, bookings[0].BookedEvent)
	assert.Equal(t, f.event.Title, bookings[0].BookedEvent.Title)
	assert.Nil(t, bookings[0].BookedService)
}

func TestUpdateBookingNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.UpdateBooking(uuid.New(), f.owner.ID, models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}
