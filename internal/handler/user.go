package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
)

type UpdateProfileRequest struct {
	Ime          *string `json:"ime"`
	Prezime      *string `json:"prezime"`
	DatumRodenja *string `json:"datum_rodenja"`
}

func (h *Handler) UserProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	user, err := h.klubSvc.GetUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška na serveru.",
		})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":            user.ID,
			"email":         user.Email,
			"referral_code": user.ReferralCode,
			"ime":           user.Ime,
			"prezime":       user.Prezime,
			"datum_rodenja": user.DatumRodenja,
			"role":          user.Role,
			"klub_id":       user.KlubID,
			"referred_by":   user.ReferredBy,
		},
	})
}

func (h *Handler) UpdateUserProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod ažuriranja profila.",
		})
	}

	if err := h.klubSvc.UpdateProfile(c.Context(), userID, req.Ime, req.Prezime, req.DatumRodenja); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod ažuriranja profila.",
		})
	}

	return c.JSON(fiber.Map{"message": "✅ Profil ažuriran."})
}
