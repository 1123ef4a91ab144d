package service

import (
	"github.com/google/uuid"

	"github.com/polishedevents/backend/internal/models"
)

// Repository interfaces are implemented by internal/repository and
// constructed once in main; services hold them by reference.

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	UpdatePassword(id uuid.UUID, hashedPassword string) error
	Delete(id uuid.UUID) error
	ListAll() ([]models.User, error)
}

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	// List returns events matching the filter ordered by event date
	// ascending, with the owning user preloaded.
	List(filter models.EventFilter) ([]models.Event, error)
	ListByUser(userID uuid.UUID) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

type ServiceRepository interface {
	Create(svc *models.Service) error
	GetByID(id uuid.UUID) (*models.Service, error)
	// List returns active services only, filtered and sorted per the filter.
	List(filter models.ServiceFilter) ([]models.Service, error)
	Update(svc *models.Service) error
	Delete(id uuid.UUID) error
}

type BookingRepository interface {
	Create(booking *models.Booking) error
	// GetByID and the listings preload the related user, event and service.
	GetByID(id uuid.UUID) (*models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListByUser(userID uuid.UUID) ([]models.Booking, error)
	Update(booking *models.Booking) error
}
