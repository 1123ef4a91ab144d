package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/config"
	"github.com/polishedevents/backend/internal/handler"
	"github.com/polishedevents/backend/internal/middleware"
	"github.com/polishedevents/backend/internal/repository"
	"github.com/polishedevents/backend/internal/router"
	"github.com/polishedevents/backend/internal/service"
	"github.com/polishedevents/backend/pkg/database"
	"github.com/polishedevents/backend/pkg/email"
	"github.com/polishedevents/backend/pkg/logger"
	"github.com/polishedevents/backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("database migration failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Email service
	emailService := email.NewEmailService(zapLogger)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo, zapLogger)
	eventService := service.NewEventService(eventRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, serviceRepo, zapLogger)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator, zapLogger)
	userHandler := handler.NewUserHandler(userService, validator, zapLogger)
	eventHandler := handler.NewEventHandler(eventService, validator, zapLogger)
	serviceHandler := handler.NewServiceHandler(catalogService, validator, zapLogger)
	bookingHandler := handler.NewBookingHandler(bookingService, validator, zapLogger)

	app := router.New(
		router.Config{CORSOrigins: cfg.CORSOrigins, RateLimit: true},
		middleware.AuthMiddleware(userService),
		authHandler,
		userHandler,
		eventHandler,
		serviceHandler,
		bookingHandler,
	)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
