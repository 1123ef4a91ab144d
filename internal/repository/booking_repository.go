package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polishedevents/backend/internal/models"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return r.db.Create(booking).Error
}

func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.withRelated().First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.withRelated().Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.withRelated().Where("user_id = ?", userID).Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *BookingRepository) withRelated() *gorm.DB {
	return r.db.Preload("User").Preload("Event").Preload("Service")
}
