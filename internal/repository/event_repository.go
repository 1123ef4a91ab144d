package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polishedevents/backend/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return r.db.Create(event).Error
}

func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("User").First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) List(filter models.EventFilter) ([]models.Event, error) {
	query := r.db.Preload("User").Order("event_date ASC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}

	var events []models.Event
	err := query.Find(&events).Error
	return events, err
}

func (r *EventRepository) ListByUser(userID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("user_id = ?", userID).Order("event_date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}
