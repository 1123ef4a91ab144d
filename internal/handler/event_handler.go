package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/service"
	"github.com/polishedevents/backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
	logger       *zap.Logger
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
		logger:       logger,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	filter := models.EventFilter{
		Status:    models.EventStatus(c.Query("status")),
		EventType: models.EventType(c.Query("eventType")),
	}

	events, err := h.eventService.ListEvents(filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.ListResponse(events, len(events)))
}

func (h *EventHandler) GetMyEvents(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	events, err := h.eventService.GetUserEvents(userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.ListResponse(events, len(events)))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(event, ""))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.UpdateEvent(eventID, userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.eventService.DeleteEvent(eventID, userID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}
