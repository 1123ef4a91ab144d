package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/service"
	"github.com/polishedevents/backend/pkg/utils"
)

type BookingHandler struct {
	bookingService *service.BookingService
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewBookingHandler(bookingService *service.BookingService, validator *utils.Validator, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validator:      validator,
		logger:         logger,
	}
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	booking, err := h.bookingService.CreateBooking(userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(booking, "Booking created successfully"))
}

func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.bookingService.ListBookings()
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.ListResponse(bookings, len(bookings)))
}

func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	bookings, err := h.bookingService.GetUserBookings(userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.ListResponse(bookings, len(bookings)))
}

func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	bookingID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid booking ID"))
	}

	booking, err := h.bookingService.GetBooking(bookingID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(booking, ""))
}

func (h *BookingHandler) UpdateBooking(c *fiber.Ctx) error {
	bookingID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid booking ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	booking, err := h.bookingService.UpdateBooking(bookingID, userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(booking, "Booking updated successfully"))
}

// CancelBooking handles DELETE but performs a status write; cancelled
// bookings stay on record.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	bookingID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid booking ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.bookingService.CancelBooking(bookingID, userID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Booking cancelled successfully"))
}
