package handlers

import (
	"log"

	"github.com/carelink-health/carecall-backend/internal/models"
	"github.com/carelink-health/carecall-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CallHandler handles speech-channel webhook requests and the call ops API
type CallHandler struct {
	orchestrator *services.Orchestrator
}

// NewCallHandler creates a new call handler
func NewCallHandler(orchestrator *services.Orchestrator) *CallHandler {
	return &CallHandler{orchestrator: orchestrator}
}

// UtterancePayload is what the speech channel posts per recognized segment
type UtterancePayload struct {
	Text string `json:"text" form:"text"`
}

// HandleUtterance processes one transcribed utterance from the speech channel
// and returns the reply text for synthesis.
func (h *CallHandler) HandleUtterance(c *fiber.Ctx) error {
	var payload UtterancePayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing utterance payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid utterance payload",
		})
	}
	if payload.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing utterance text",
		})
	}

	reply, err := h.orchestrator.HandleFrame(c.UserContext(), models.UtteranceFrame(payload.Text))
	if err != nil {
		log.Printf("Error processing utterance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process utterance",
		})
	}

	snapshot := h.orchestrator.Snapshot()
	return c.JSON(fiber.Map{
		"reply": reply.Text,
		"stage": snapshot.State.Stage,
	})
}

// StartCall begins a new call session for the configured patient.
func (h *CallHandler) StartCall(c *fiber.Ctx) error {
	callID := h.orchestrator.StartCall()
	return c.JSON(fiber.Map{
		"call_id": callID,
		"status":  "started",
	})
}

// GetCurrentCall returns the state of the active call.
func (h *CallHandler) GetCurrentCall(c *fiber.Ctx) error {
	snapshot := h.orchestrator.Snapshot()
	if snapshot == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No active call",
		})
	}
	return c.JSON(snapshot)
}

// GetTranscript returns the transcript of the active call.
func (h *CallHandler) GetTranscript(c *fiber.Ctx) error {
	entries := h.orchestrator.Transcript()
	return c.JSON(fiber.Map{
		"count":      len(entries),
		"transcript": entries,
	})
}
