package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/polishedevents/backend/internal/config"
	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/internal/repository"
	"github.com/polishedevents/backend/pkg/bcrypt"
	"github.com/polishedevents/backend/pkg/database"
)

// Loads sample catalog services and showcase events. Safe to run repeatedly;
// existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)

	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		for _, svc := range sampleServices() {
			if err := db.Create(&svc).Error; err != nil {
				log.Fatalf("Failed to seed service %q: %v", svc.Name, err)
			}
		}
		log.Println("Seeded catalog services")
	} else {
		log.Println("Services already exist, skipping")
	}

	var eventCount int64
	db.Model(&models.Event{}).Count(&eventCount)
	if eventCount > 0 {
		log.Println("Events already exist, skipping")
		return
	}

	owner, err := userRepo.GetByEmail("events@polishedevents.com")
	if err != nil {
		hash, err := bcrypt.HashPassword("PolishedEvents123!")
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}
		owner = &models.User{
			FirstName: "Polished",
			LastName:  "Events",
			Email:     "events@polishedevents.com",
			Password:  hash,
			Phone:     "555-0000",
			IsActive:  true,
		}
		if err := userRepo.Create(owner); err != nil {
			log.Fatalf("Failed to create showcase user: %v", err)
		}
	}

	for _, event := range sampleEvents(owner) {
		if err := db.Create(&event).Error; err != nil {
			log.Fatalf("Failed to seed event %q: %v", event.Title, err)
		}
	}
	log.Println("Seeded showcase events")
}

func sampleServices() []models.Service {
	return []models.Service{
		{
			Name:        "Gourmet Catering",
			Description: "Full-service catering with seasonal menus, staff and table setup.",
			Category:    models.ServiceCategoryCatering,
			Price:       45,
			Rating:      4.8,
			Reviews:     124,
			IsActive:    true,
		},
		{
			Name:        "Floral & Stage Decoration",
			Description: "Custom floral arrangements, stage and venue styling.",
			Category:    models.ServiceCategoryDecoration,
			Price:       1200,
			Rating:      4.6,
			Reviews:     86,
			IsActive:    true,
		},
		{
			Name:        "Wedding Photography",
			Description: "Two photographers, full-day coverage and an edited album.",
			Category:    models.ServiceCategoryPhotography,
			Price:       2500,
			Rating:      4.9,
			Reviews:     210,
			IsActive:    true,
		},
		{
			Name:        "Live Band & DJ",
			Description: "Five-piece band with DJ set for the late hours.",
			Category:    models.ServiceCategoryMusic,
			Price:       1800,
			Rating:      4.5,
			Reviews:     64,
			IsActive:    true,
		},
		{
			Name:        "Riverside Manor Venue",
			Description: "Garden venue with indoor hall for up to 300 guests.",
			Category:    models.ServiceCategoryVenue,
			Price:       5000,
			Rating:      4.7,
			Reviews:     152,
			IsActive:    true,
		},
		{
			Name:        "Full Event Planning",
			Description: "End-to-end planning, vendor management and day-of coordination.",
			Category:    models.ServiceCategoryPlanning,
			Price:       3200,
			Rating:      4.9,
			Reviews:     98,
			IsActive:    true,
		},
	}
}

func sampleEvents(owner *models.User) []models.Event {
	budget := func(v float64) *float64 { return &v }
	guests := func(v int) *int { return &v }

	return []models.Event{
		{
			Title:       "Summer Wedding Celebration",
			Description: "A beautiful summer wedding celebration with elegant decorations, gourmet catering, and live music entertainment.",
			EventType:   models.EventTypeWedding,
			Location:    "Riverside Manor, New York",
			EventDate:   time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC),
			GuestCount:  guests(180),
			Budget:      budget(15000),
			Status:      models.EventStatusUpcoming,
			UserID:      owner.ID,
		},
		{
			Title:       "Tech Conference 2026",
			Description: "Annual technology conference with keynotes, workshops and an expo floor.",
			EventType:   models.EventTypeCorporate,
			Location:    "Convention Center, San Francisco",
			EventDate:   time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
			GuestCount:  guests(500),
			Budget:      budget(40000),
			Status:      models.EventStatusUpcoming,
			UserID:      owner.ID,
		},
		{
			Title:       "Golden Anniversary Gala",
			Description: "Fifty years together, celebrated with family, friends and a formal dinner.",
			EventType:   models.EventTypeAnniversary,
			Location:    "Grand Ballroom, Chicago",
			EventDate:   time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
			GuestCount:  guests(120),
			Budget:      budget(9000),
			Status:      models.EventStatusUpcoming,
			UserID:      owner.ID,
		},
	}
}
