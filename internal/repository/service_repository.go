package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polishedevents/backend/internal/models"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(svc *models.Service) error {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	return r.db.Create(svc).Error
}

func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var svc models.Service
	err := r.db.First(&svc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) List(filter models.ServiceFilter) ([]models.Service, error) {
	query := r.db.Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	switch filter.SortBy {
	case models.ServiceSortPriceLow:
		query = query.Order("price ASC")
	case models.ServiceSortPriceHigh:
		query = query.Order("price DESC")
	case models.ServiceSortRating:
		query = query.Order("rating DESC")
	default:
		query = query.Order("name ASC")
	}

	var services []models.Service
	err := query.Find(&services).Error
	return services, err
}

func (r *ServiceRepository) Update(svc *models.Service) error {
	return r.db.Save(svc).Error
}

func (r *ServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
