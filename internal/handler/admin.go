package handler

import (
	"github.com/gofiber/fiber/v2"
)

// ReferralPayouts lists every ledger entry joined with the reporting
// club, newest first. Admin only.
func (h *Handler) ReferralPayouts(c *fiber.Ctx) error {
	payouts, err := h.referralSvc.AllPayouts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod dohvaćanja isplata.",
		})
	}
	return c.JSON(fiber.Map{"isplate": payouts})
}

// TotalReferralPayouts sums commission across the whole ledger; the total
// is a fixed 2-decimal string.
func (h *Handler) TotalReferralPayouts(c *fiber.Ctx) error {
	total, err := h.referralSvc.TotalPayouts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod dohvaćanja isplata.",
		})
	}
	return c.JSON(fiber.Map{"ukupno_isplaceno_eur": total})
}
