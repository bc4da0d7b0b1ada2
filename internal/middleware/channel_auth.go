package middleware

import (
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

// ValidateChannelToken validates that a webhook request comes from the speech
// channel. The channel is expected to send the shared token from
// CHANNEL_WEBHOOK_TOKEN in the X-Channel-Token header.
func ValidateChannelToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Channel-Token")
		if token == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "Missing channel token",
			})
		}

		expected := os.Getenv("CHANNEL_WEBHOOK_TOKEN")
		if expected == "" {
			// Log error but don't expose to client
			fmt.Println("ERROR: CHANNEL_WEBHOOK_TOKEN not set")
			return c.Status(500).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			return c.Status(401).JSON(fiber.Map{
				"error": "Invalid channel token",
			})
		}

		return c.Next()
	}
}
