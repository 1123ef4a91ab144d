package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/repository/memory"
)

func newCatalogFixture(t *testing.T) *CatalogService {
	t.Helper()

	svc := NewCatalogService(memory.NewStore().Services())

	seed := []models.CreateServiceRequest{
		{Name: "Premium Catering", Description: "d", Category: models.ServiceCategoryCatering, Price: 85},
		{Name: "Acoustic Duo", Description: "d", Category: models.ServiceCategoryMusic, Price: 40},
		{Name: "Full Planning", Description: "d", Category: models.ServiceCategoryPlanning, Price: 120},
	}
	for _, req := range seed {
		_, err := svc.CreateService(req)
		require.NoError(t, err)
	}

	return svc
}

func TestCreateServiceActiveByDefault(t *testing.T) {
	svc := newCatalogFixture(t)

	created, err := svc.CreateService(models.CreateServiceRequest{
		Name:        "Venue Hire",
		Description: "d",
		Category:    models.ServiceCategoryVenue,
		Price:       300,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.Rating)
}

func TestListServicesFilterByCategory(t *testing.T) {
	svc := newCatalogFixture(t)

	music, err := svc.ListServices(models.ServiceFilter{Category: models.ServiceCategoryMusic})
	require.NoError(t, err)
	require.Len(t, music, 1)
	assert.Equal(t, "Acoustic Duo", music[0].Name)
}

func TestListServicesSortByPrice(t *testing.T) {
	svc := newCatalogFixture(t)

	low, err := svc.ListServices(models.ServiceFilter{SortBy: models.ServiceSortPriceLow})
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, "Acoustic Duo", low[0].Name)
	assert.Equal(t, "Full Planning", low[2].Name)

	high, err := svc.ListServices(models.ServiceFilter{SortBy: models.ServiceSortPriceHigh})
	require.NoError(t, err)
	assert.Equal(t, "Full Planning", high[0].Name)
}

func TestListServicesHidesInactive(t *testing.T) {
	svc := newCatalogFixture(t)

	all, err := svc.ListServices(models.ServiceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	inactive := false
	_, err = svc.UpdateService(all[0].ID, models.UpdateServiceRequest{IsActive: &inactive})
	require.NoError(t, err)

	visible, err := svc.ListServices(models.ServiceFilter{})
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestDeleteServiceNotFound(t *testing.T) {
	svc := newCatalogFixture(t)

	all, err := svc.ListServices(models.ServiceFilter{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteService(all[0].ID))
	assert.ErrorIs(t, svc.DeleteService(all[0].ID), models.ErrServiceNotFound)
}
