package service

import (
	"github.com/google/uuid"

	"github.com/polishedevents/backend/internal/models"
)

// CatalogService manages the shared service catalog. Catalog entries have no
// owning user, so any authenticated caller may mutate them.
type CatalogService struct {
	serviceRepo ServiceRepository
}

func NewCatalogService(serviceRepo ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

func (s *CatalogService) CreateService(req models.CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.serviceRepo.Create(svc); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *CatalogService) GetService(id uuid.UUID) (*models.Service, error) {
	return s.serviceRepo.GetByID(id)
}

func (s *CatalogService) ListServices(filter models.ServiceFilter) ([]models.Service, error) {
	return s.serviceRepo.List(filter)
}

func (s *CatalogService) Categories() []models.ServiceCategory {
	return models.ServiceCategories
}

func (s *CatalogService) UpdateService(id uuid.UUID, req models.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		svc.Rating = *req.Rating
	}
	if req.Reviews != nil {
		svc.Reviews = *req.Reviews
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Update(svc); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *CatalogService) DeleteService(id uuid.UUID) error {
	if _, err := s.serviceRepo.GetByID(id); err != nil {
		return err
	}
	return s.serviceRepo.Delete(id)
}
