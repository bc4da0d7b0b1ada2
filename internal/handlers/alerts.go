package handlers

import (
	"encoding/json"
	"log"

	"github.com/carelink-health/carecall-backend/internal/models"
	"github.com/carelink-health/carecall-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// AlertReceiverHandler implements the reference care-team alert receiver.
// Any HTTP 200-returning endpoint satisfies the notifier contract; this one
// additionally logs and stores what it accepts so escalations can be audited.
type AlertReceiverHandler struct {
	store storage.Store
}

// NewAlertReceiverHandler creates a new alert receiver handler
func NewAlertReceiverHandler(store storage.Store) *AlertReceiverHandler {
	return &AlertReceiverHandler{store: store}
}

// HandleAlert accepts an alert POST from the notifier.
func (h *AlertReceiverHandler) HandleAlert(c *fiber.Ctx) error {
	var alert models.Alert
	if err := c.BodyParser(&alert); err != nil {
		log.Printf("Error parsing alert payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid alert payload",
		})
	}

	log.Printf("🚨 Alert received for %s: %v (%s)", alert.PatientID, alert.ReportedSymptoms, alert.AlertLevel)

	symptoms, err := json.Marshal(alert.ReportedSymptoms)
	if err != nil {
		symptoms = []byte("[]")
	}
	if _, err := h.store.CreateAlertRecord(&models.AlertRecord{
		PatientID:  alert.PatientID,
		Symptoms:   string(symptoms),
		AlertLevel: string(alert.AlertLevel),
		ReportedAt: alert.Timestamp,
	}); err != nil {
		log.Printf("⚠️  Failed to store alert record: %v", err)
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// ListAlerts returns every alert the receiver has accepted.
func (h *AlertReceiverHandler) ListAlerts(c *fiber.Ctx) error {
	records, err := h.store.GetAlertRecords()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"count":  len(records),
		"alerts": records,
	})
}
