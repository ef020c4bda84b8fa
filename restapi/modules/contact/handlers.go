// Package contact handles public contact-form submissions. Messages are
// logged, not persisted.
package contact

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhid/portfolio-backend/model"
)

// Submit validates a contact submission and acknowledges it.
func Submit(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		name := req.FullName()
		if name == "" || req.Email == "" || req.Message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name and email and message are required",
			})
		}

		logger.Info("contact form submission",
			zap.String("name", name),
			zap.String("email", req.Email),
			zap.String("phone", req.Phone),
			zap.String("intent", req.Intent),
			zap.String("message", req.Message),
		)

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Thank you for your message. I'll get back to you soon.",
		})
	}
}
