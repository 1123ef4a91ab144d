// Package memory provides map-backed implementations of the repository
// interfaces for tests. Semantics mirror the GORM repositories: generated
// UUIDs, lowercased emails, sorted listings and preloaded associations.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/polishedevents/backend/internal/models"
)

type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]models.User
	events   map[uuid.UUID]models.Event
	services map[uuid.UUID]models.Service
	bookings map[uuid.UUID]models.Booking
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]models.User),
		events:   make(map[uuid.UUID]models.Event),
		services: make(map[uuid.UUID]models.Service),
		bookings: make(map[uuid.UUID]models.Booking),
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{store: s} }
func (s *Store) Events() *EventRepo     { return &EventRepo{store: s} }
func (s *Store) Services() *ServiceRepo { return &ServiceRepo{store: s} }
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{store: s} }

type UserRepo struct {
	store *Store
}

func (r *UserRepo) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = strings.ToLower(user.Email)
	r.store.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	email = strings.ToLower(email)
	for _, user := range r.store.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *UserRepo) EmailExists(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *UserRepo) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[user.ID] = *user
	return nil
}

func (r *UserRepo) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.Password = hashedPassword
	r.store.users[id] = user
	return nil
}

func (r *UserRepo) Delete(id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.users, id)

	// FK cascade: drop owned events and bookings like the database would.
	for eventID, event := range r.store.events {
		if event.UserID == id {
			delete(r.store.events, eventID)
		}
	}
	for bookingID, booking := range r.store.bookings {
		if booking.UserID == id {
			delete(r.store.bookings, bookingID)
		}
	}
	return nil
}

func (r *UserRepo) ListAll() ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]models.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user)
	}
	return users, nil
}

type EventRepo struct {
	store *Store
}

func (r *EventRepo) Create(event *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.store.events[event.ID] = *event
	return nil
}

func (r *EventRepo) GetByID(id uuid.UUID) (*models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	r.attachOwner(&event)
	return &event, nil
}

func (r *EventRepo) List(filter models.EventFilter) ([]models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events := make([]models.Event, 0, len(r.store.events))
	for _, event := range r.store.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.EventType != "" && event.EventType != filter.EventType {
			continue
		}
		r.attachOwner(&event)
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
	return events, nil
}

func (r *EventRepo) ListByUser(userID uuid.UUID) ([]models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events := make([]models.Event, 0)
	for _, event := range r.store.events {
		if event.UserID == userID {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
	return events, nil
}

func (r *EventRepo) Update(event *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *event
	stored.User = nil
	r.store.events[event.ID] = stored
	return nil
}

func (r *EventRepo) Delete(id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.events, id)
	for bookingID, booking := range r.store.bookings {
		if booking.EventID != nil && *booking.EventID == id {
			delete(r.store.bookings, bookingID)
		}
	}
	return nil
}

func (r *EventRepo) attachOwner(event *models.Event) {
	if owner, ok := r.store.users[event.UserID]; ok {
		owner := owner
		event.User = &owner
	}
}

type ServiceRepo struct {
	store *Store
}

func (r *ServiceRepo) Create(svc *models.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	r.store.services[svc.ID] = *svc
	return nil
}

func (r *ServiceRepo) GetByID(id uuid.UUID) (*models.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	svc, ok := r.store.services[id]
	if !ok {
		return nil, models.ErrServiceNotFound
	}
	return &svc, nil
}

func (r *ServiceRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	services := make([]models.Service, 0)
	for _, svc := range r.store.services {
		if !svc.IsActive {
			continue
		}
		if filter.Category != "" && svc.Category != filter.Category {
			continue
		}
		services = append(services, svc)
	}

	sort.Slice(services, func(i, j int) bool {
		a, b := services[i], services[j]
		switch filter.SortBy {
		case models.ServiceSortPriceLow:
			return a.Price < b.Price
		case models.ServiceSortPriceHigh:
			return a.Price > b.Price
		case models.ServiceSortRating:
			return a.Rating > b.Rating
		default:
			return a.Name < b.Name
		}
	})
	return services, nil
}

func (r *ServiceRepo) Update(svc *models.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.services[svc.ID] = *svc
	return nil
}

func (r *ServiceRepo) Delete(id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.services, id)
	for bookingID, booking := range r.store.bookings {
		if booking.ServiceID != nil && *booking.ServiceID == id {
			delete(r.store.bookings, bookingID)
		}
	}
	return nil
}

type BookingRepo struct {
	store *Store
}

func (r *BookingRepo) Create(booking *models.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	r.store.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepo) GetByID(id uuid.UUID) (*models.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	r.attachRelated(&booking)
	return &booking, nil
}

func (r *BookingRepo) ListAll() ([]models.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bookings := make([]models.Booking, 0, len(r.store.bookings))
	for _, booking := range r.store.bookings {
		r.attachRelated(&booking)
		bookings = append(bookings, booking)
	}
	sortByBookingDateDesc(bookings)
	return bookings, nil
}

func (r *BookingRepo) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bookings := make([]models.Booking, 0)
	for _, booking := range r.store.bookings {
		if booking.UserID != userID {
			continue
		}
		r.attachRelated(&booking)
		bookings = append(bookings, booking)
	}
	sortByBookingDateDesc(bookings)
	return bookings, nil
}

func (r *BookingRepo) Update(booking *models.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *booking
	stored.User = nil
	stored.Event = nil
	stored.Service = nil
	r.store.bookings[booking.ID] = stored
	return nil
}

func (r *BookingRepo) attachRelated(booking *models.Booking) {
	if user, ok := r.store.users[booking.UserID]; ok {
		user := user
		booking.User = &user
	}
	if booking.EventID != nil {
		if event, ok := r.store.events[*booking.EventID]; ok {
			event := event
			booking.Event = &event
		}
	}
	if booking.ServiceID != nil {
		if svc, ok := r.store.services[*booking.ServiceID]; ok {
			svc := svc
			booking.Service = &svc
		}
	}
}

func sortByBookingDateDesc(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})
}
