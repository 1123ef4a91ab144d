package models

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeWedding     EventType = "Wedding"
	EventTypeBirthday    EventType = "Birthday"
	EventTypeAnniversary EventType = "Anniversary"
	EventTypeCorporate   EventType = "Corporate"
	EventTypeOther       EventType = "Other"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "Upcoming"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusCancelled EventStatus = "Cancelled"
)

type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	EventType   EventType   `json:"eventType" gorm:"type:varchar(20);default:'Other'"`
	Location    string      `json:"location" gorm:"not null"`
	EventDate   time.Time   `json:"eventDate" gorm:"not null;index"`
	StartTime   string      `json:"startTime,omitempty"`
	EndTime     string      `json:"endTime,omitempty"`
	GuestCount  *int        `json:"guestCount,omitempty"`
	Budget      *float64    `json:"budget,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);default:'Upcoming'"`
	UserID      uuid.UUID   `json:"userId" gorm:"type:uuid;not null;index"`
	User        *User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// EventSummary is the bounded slice of event fields embedded in booking listings.
type EventSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	EventDate time.Time `json:"eventDate"`
}

func (e *Event) Summary() *EventSummary {
	return &EventSummary{
		ID:        e.ID,
		Title:     e.Title,
		Location:  e.Location,
		EventDate: e.EventDate,
	}
}

type EventResponse struct {
	Event
	Owner *UserSummary `json:"user,omitempty"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	EventType   EventType `json:"eventType" validate:"omitempty,oneof=Wedding Birthday Anniversary Corporate Other"`
	Location    string    `json:"location" validate:"required"`
	EventDate   time.Time `json:"eventDate" validate:"required"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	GuestCount  *int      `json:"guestCount" validate:"omitempty,min=0"`
	Budget      *float64  `json:"budget" validate:"omitempty,min=0"`
	ImageURL    string    `json:"imageUrl"`
}

type UpdateEventRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	EventType   *EventType   `json:"eventType" validate:"omitempty,oneof=Wedding Birthday Anniversary Corporate Other"`
	Location    *string      `json:"location"`
	EventDate   *time.Time   `json:"eventDate"`
	StartTime   *string      `json:"startTime"`
	EndTime     *string      `json:"endTime"`
	GuestCount  *int         `json:"guestCount" validate:"omitempty,min=0"`
	Budget      *float64     `json:"budget" validate:"omitempty,min=0"`
	ImageURL    *string      `json:"imageUrl"`
	Status      *EventStatus `json:"status" validate:"omitempty,oneof=Upcoming Completed Cancelled"`
}

// EventFilter narrows public event listings; zero values mean "no filter".
type EventFilter struct {
	Status    EventStatus
	EventType EventType
}
