package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/polishedevents/backend/internal/models"
	jwtPkg "github.com/polishedevents/backend/pkg/jwt"
)

// UserResolver turns a token's user id into a live user record.
type UserResolver interface {
	GetUserByID(id uuid.UUID) (*models.User, error)
}

// AuthMiddleware guards a route with bearer-token authentication. A missing
// header is 401, a bad or expired token 403, and a valid token whose user no
// longer exists 404. On success the resolved user is placed in Locals for
// downstream handlers.
func AuthMiddleware(users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Access token required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Invalid or expired token"))
		}

		userID, err := jwtPkg.UserIDFromClaims(claims)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Invalid or expired token"))
		}

		user, err := users.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found"))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Authentication error"))
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)

		return c.Next()
	}
}
