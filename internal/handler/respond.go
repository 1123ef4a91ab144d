package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
)

// respondError maps domain errors to statuses. Unexpected errors are logged
// and surfaced as a generic 500; internal error text never reaches clients.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrWrongPassword):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrTokenInvalid),
		errors.Is(err, models.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrServiceNotFound),
		errors.Is(err, models.ErrBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
	default:
		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Something went wrong"))
	}
}

// currentUserID reads the identity the auth middleware stored in Locals.
func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals("userID").(uuid.UUID)
	return userID, ok
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
