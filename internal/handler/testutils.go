package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Reset truncates all domain tables. The route is registered only when
// the test-mode flag is set; it is not part of the production surface.
func (h *Handler) Reset(c *fiber.Ctx) error {
	if err := h.resetter.ResetAll(c.Context()); err != nil {
		log.Printf("reset failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri resetiranju baze.",
		})
	}
	return c.JSON(fiber.Map{"message": "Baza je resetirana."})
}
