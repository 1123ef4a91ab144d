package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceCategory string

const (
	ServiceCategoryCatering    ServiceCategory = "Catering"
	ServiceCategoryDecoration  ServiceCategory = "Decoration"
	ServiceCategoryPhotography ServiceCategory = "Photography"
	ServiceCategoryMusic       ServiceCategory = "Music"
	ServiceCategoryVenue       ServiceCategory = "Venue"
	ServiceCategoryPlanning    ServiceCategory = "Planning"
)

// ServiceCategories is the fixed catalog taxonomy exposed by the categories endpoint.
var ServiceCategories = []ServiceCategory{
	ServiceCategoryCatering,
	ServiceCategoryDecoration,
	ServiceCategoryPhotography,
	ServiceCategoryMusic,
	ServiceCategoryVenue,
	ServiceCategoryPlanning,
}

// Service is a bookable catalog offering. It has no owning user.
type Service struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Category    ServiceCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	Price       float64         `json:"price" gorm:"not null"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Rating      float64         `json:"rating" gorm:"default:0"`
	Reviews     int             `json:"reviews" gorm:"default:0"`
	IsActive    bool            `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ServiceSummary is the bounded slice of service fields embedded in booking listings.
type ServiceSummary struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category ServiceCategory `json:"category"`
	Price    float64         `json:"price"`
}

func (s *Service) Summary() *ServiceSummary {
	return &ServiceSummary{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
	}
}

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    ServiceCategory `json:"category" validate:"required,oneof=Catering Decoration Photography Music Venue Planning"`
	Price       float64         `json:"price" validate:"required,min=0"`
	ImageURL    string          `json:"imageUrl"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *ServiceCategory `json:"category" validate:"omitempty,oneof=Catering Decoration Photography Music Venue Planning"`
	Price       *float64         `json:"price" validate:"omitempty,min=0"`
	ImageURL    *string          `json:"imageUrl"`
	Rating      *float64         `json:"rating" validate:"omitempty,min=0,max=5"`
	Reviews     *int             `json:"reviews" validate:"omitempty,min=0"`
	IsActive    *bool            `json:"isActive"`
}

// ServiceSort selects the listing order for the catalog.
type ServiceSort string

const (
	ServiceSortName      ServiceSort = ""
	ServiceSortPriceLow  ServiceSort = "price-low"
	ServiceSortPriceHigh ServiceSort = "price-high"
	ServiceSortRating    ServiceSort = "rating"
)

type ServiceFilter struct {
	Category ServiceCategory
	SortBy   ServiceSort
}
