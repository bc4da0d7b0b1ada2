package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/carelink-health/carecall-backend/database"
	"github.com/carelink-health/carecall-backend/internal/models"
	"github.com/carelink-health/carecall-backend/internal/routes"
	"github.com/carelink-health/carecall-backend/internal/services"
	"github.com/carelink-health/carecall-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Load the patient profile for this call campaign
	profile := models.ReferenceProfile()
	if path := os.Getenv("PATIENT_PROFILE_FILE"); path != "" {
		loaded, err := models.LoadPatientProfile(path)
		if err != nil {
			log.Fatal("Failed to load patient profile:", err)
		}
		profile = loaded
		log.Printf("✅ Patient profile loaded from %s", path)
	} else {
		log.Println("⚠️  PATIENT_PROFILE_FILE not set - using built-in reference profile")
	}

	// Initialize storage
	var store storage.Store

	// Check if we should use memory store (for testing)
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		// Connect to database
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		// Run migrations
		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.AlertRecord{},
			&models.CallRecord{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		// Use database store
		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Intent vocabulary (optional override for additional languages)
	var vocabulary map[string]services.Intent
	if path := os.Getenv("INTENT_VOCAB_FILE"); path != "" {
		loaded, err := services.LoadVocabulary(path)
		if err != nil {
			log.Fatal("Failed to load intent vocabulary:", err)
		}
		vocabulary = loaded
		log.Printf("✅ Intent vocabulary loaded from %s (%d terms)", path, len(loaded))
	}
	classifier := services.NewIntentClassifier(vocabulary)

	// Alert notifier for care-team escalation
	alertService := services.NewAlertService()
	log.Printf("✅ Alert notifier configured for %s", alertService.Endpoint())

	// Dialogue configuration
	dialogueConfig := services.DialogueConfig{
		ReportAllConfirmed: os.Getenv("ALERT_REPORT_ALL") == "true",
	}
	if v := os.Getenv("MAX_VERIFY_ATTEMPTS"); v != "" {
		if attempts, err := strconv.Atoi(v); err == nil && attempts > 0 {
			dialogueConfig.MaxVerifyAttempts = attempts
		}
	}

	orchestrator := services.NewOrchestrator(store, classifier, alertService, profile, dialogueConfig)
	log.Println("✅ All services initialized")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "CareCall Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Setup routes
	routes.SetupRoutes(app, store, orchestrator)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 CareCall Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("👤 Patient: %s (%s)", profile.FullName, profile.PatientID)
	log.Printf("🩺 Symptoms to screen: %d", len(profile.HighRiskSymptoms))
	log.Printf("🚨 Alert endpoint: %s", alertService.Endpoint())
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}
