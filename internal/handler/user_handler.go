package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/service"
	"github.com/polishedevents/backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
		logger:      logger,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	return c.JSON(models.SuccessResponse(user, ""))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	user, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(user, "Profile updated successfully"))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.userService.ChangePassword(userID, req); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password changed successfully"))
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Account deleted successfully"))
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(models.ListResponse(users, len(users)))
}
