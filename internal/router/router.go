package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/polishedevents/backend/internal/handler"
	"github.com/polishedevents/backend/internal/models"
)

type Config struct {
	CORSOrigins string
	RateLimit   bool
}

// New assembles the fiber app: global middleware, public routes, then the
// per-route auth gate on everything owner-facing.
func New(
	cfg Config,
	authGate fiber.Handler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	eventHandler *handler.EventHandler,
	serviceHandler *handler.ServiceHandler,
	bookingHandler *handler.BookingHandler,
) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(logger.New())
	if cfg.RateLimit {
		app.Use(limiter.New(limiter.Config{
			Max:        60,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse(fiber.Map{"timestamp": time.Now()}, "Server is running"))
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify-email", authHandler.VerifyEmail)

	users := api.Group("/users")
	users.Get("/all", userHandler.ListUsers)
	users.Get("/profile", authGate, userHandler.GetProfile)
	users.Put("/profile", authGate, userHandler.UpdateProfile)
	users.Put("/change-password", authGate, userHandler.ChangePassword)
	users.Delete("/account", authGate, userHandler.DeleteAccount)

	events := api.Group("/events")
	events.Get("/", eventHandler.ListEvents)
	events.Get("/user/my-events", authGate, eventHandler.GetMyEvents)
	events.Get("/:id", eventHandler.GetEvent)
	events.Post("/", authGate, eventHandler.CreateEvent)
	events.Put("/:id", authGate, eventHandler.UpdateEvent)
	events.Delete("/:id", authGate, eventHandler.DeleteEvent)

	services := api.Group("/services")
	services.Get("/", serviceHandler.ListServices)
	services.Get("/categories/list", serviceHandler.ListCategories)
	services.Get("/:id", serviceHandler.GetService)
	services.Post("/", authGate, serviceHandler.CreateService)
	services.Put("/:id", authGate, serviceHandler.UpdateService)
	services.Delete("/:id", authGate, serviceHandler.DeleteService)

	bookings := api.Group("/bookings")
	bookings.Get("/", bookingHandler.ListBookings)
	bookings.Get("/user/my-bookings", authGate, bookingHandler.GetMyBookings)
	bookings.Get("/:id", bookingHandler.GetBooking)
	bookings.Post("/", authGate, bookingHandler.CreateBooking)
	bookings.Put("/:id", authGate, bookingHandler.UpdateBooking)
	bookings.Delete("/:id", authGate, bookingHandler.CancelBooking)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Route not found"))
	})

	return app
}
