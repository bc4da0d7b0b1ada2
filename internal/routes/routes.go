package routes

import (
	"os"

	"github.com/carelink-health/carecall-backend/internal/handlers"
	"github.com/carelink-health/carecall-backend/internal/middleware"
	"github.com/carelink-health/carecall-backend/internal/services"
	"github.com/carelink-health/carecall-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, orchestrator *services.Orchestrator) {

	callHandler := handlers.NewCallHandler(orchestrator)
	healthHandler := handlers.NewHealthHandler("1.0.0", storageType())

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to CareCall Backend!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":     "/health",
				"api":        "/api",
				"webhook":    "/webhook/utterance",
				"test_input": "/test/utterance",
			},
		})
	})

	// Health check
	app.Get("/health", healthHandler.Check)

	// API routes
	api := app.Group("/api")

	calls := api.Group("/calls")
	calls.Post("/start", callHandler.StartCall)
	calls.Get("/current", callHandler.GetCurrentCall)
	calls.Get("/current/transcript", callHandler.GetTranscript)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// Speech channel webhook - ENVIRONMENT-AWARE VALIDATION
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: the local speech pipeline posts without a token
		webhooks.Post("/utterance", callHandler.HandleUtterance)
		if os.Getenv("ENVIRONMENT") == "development" {
			println("⚠️  Speech channel webhook validation DISABLED for development")
		}
	} else {
		// Production: require the shared channel token
		webhooks.Post("/utterance", middleware.ValidateChannelToken(), callHandler.HandleUtterance)
	}

	// ========== TEST ROUTES (Development Only) ==========
	// Drive the conversation by hand without a speech pipeline
	app.Post("/test/utterance", callHandler.HandleUtterance)

	// ========== MOCK ALERT RECEIVER ==========
	// Stands in for the on-call care team endpoint during integration runs
	if os.Getenv("ENABLE_ALERT_RECEIVER") == "true" {
		alertHandler := handlers.NewAlertReceiverHandler(store)
		app.Post("/alert", alertHandler.HandleAlert)
		api.Get("/alerts", alertHandler.ListAlerts)
	}
}

func storageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "memory"
	}
	return "postgres"
}
