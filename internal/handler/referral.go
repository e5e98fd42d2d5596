package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

func (h *Handler) MyEarnings(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleUser {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo korisnici mogu vidjeti svoju zaradu od preporuka.",
		})
	}

	total, err := h.referralSvc.MyEarnings(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod dohvaćanja zarade.",
		})
	}

	return c.JSON(fiber.Map{"total_earnings": total})
}

func (h *Handler) MyReferrals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleUser {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo korisnici mogu vidjeti svoje preporuke.",
		})
	}

	referrals, err := h.referralSvc.MyReferrals(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod dohvaćanja preporučenih korisnika.",
		})
	}

	return c.JSON(fiber.Map{"referrals": referrals})
}

// RequestPayout only acknowledges the request; payouts are handled
// manually for now.
// TODO: persist payout requests and notify an admin.
func (h *Handler) RequestPayout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleUser {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo korisnici mogu zatražiti isplatu.",
		})
	}

	log.Printf("payout requested by user %s", userID)

	return c.JSON(fiber.Map{
		"message": "Zahtjev za isplatu poslan. Uskoro ćemo te kontaktirati.",
	})
}
