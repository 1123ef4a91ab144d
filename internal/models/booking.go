package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingType selects whether a booking refers to an event or a catalog
// service, and therefore which foreign key is populated.
type BookingType string

const (
	BookingTypeEvent   BookingType = "Event"
	BookingTypeService BookingType = "Service"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID     `json:"userId" gorm:"type:uuid;not null;index"`
	User          *User         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	EventID       *uuid.UUID    `json:"eventId,omitempty" gorm:"type:uuid"`
	Event         *Event        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ServiceID     *uuid.UUID    `json:"serviceId,omitempty" gorm:"type:uuid"`
	Service       *Service      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BookingType   BookingType   `json:"bookingType" gorm:"type:varchar(10);not null"`
	Quantity      int           `json:"quantity" gorm:"default:1"`
	TotalPrice    *float64      `json:"totalPrice,omitempty"`
	BookingDate   time.Time     `json:"bookingDate" gorm:"index"`
	PreferredDate *time.Time    `json:"preferredDate,omitempty"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(10);default:'Pending'"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BookingResponse embeds the bounded related fields a listing carries.
type BookingResponse struct {
	Booking
	Owner         *UserSummary    `json:"user,omitempty"`
	BookedEvent   *EventSummary   `json:"event,omitempty"`
	BookedService *ServiceSummary `json:"service,omitempty"`
}

type CreateBookingRequest struct {
	BookingType   BookingType `json:"bookingType" validate:"required,oneof=Event Service"`
	EventID       *uuid.UUID  `json:"eventId"`
	ServiceID     *uuid.UUID  `json:"serviceId"`
	Quantity      *int        `json:"quantity" validate:"omitempty,min=1"`
	TotalPrice    *float64    `json:"totalPrice" validate:"omitempty,min=0"`
	PreferredDate *time.Time  `json:"preferredDate"`
	Notes         string      `json:"notes"`
}

type UpdateBookingRequest struct {
	Quantity      *int           `json:"quantity" validate:"omitempty,min=1"`
	TotalPrice    *float64       `json:"totalPrice" validate:"omitempty,min=0"`
	PreferredDate *time.Time     `json:"preferredDate"`
	Notes         *string        `json:"notes"`
	Status        *BookingStatus `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}
