package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/service"
	"github.com/polishedevents/backend/pkg/utils"
)

type ServiceHandler struct {
	catalogService *service.CatalogService
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewServiceHandler(catalogService *service.CatalogService, validator *utils.Validator, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
		validator:      validator,
		logger:         logger,
	}
}

func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	var req models.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	svc, err := h.catalogService.CreateService(req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(svc, "Service created successfully"))
}

func (h *ServiceHandler) ListServices(c *fiber.Ctx) error {
	filter := models.ServiceFilter{
		Category: models.ServiceCategory(c.Query("category")),
		SortBy:   models.ServiceSort(c.Query("sortBy")),
	}

	services, err := h.catalogService.ListServices(filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.ListResponse(services, len(services)))
}

func (h *ServiceHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.catalogService.Categories(), ""))
}

func (h *ServiceHandler) GetService(c *fiber.Ctx) error {
	serviceID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid service ID"))
	}

	svc, err := h.catalogService.GetService(serviceID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(svc, ""))
}

func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	serviceID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid service ID"))
	}

	var req models.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	svc, err := h.catalogService.UpdateService(serviceID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(svc, "Service updated successfully"))
}

func (h *ServiceHandler) DeleteService(c *fiber.Ctx) error {
	serviceID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid service ID"))
	}

	if err := h.catalogService.DeleteService(serviceID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Service deleted successfully"))
}
