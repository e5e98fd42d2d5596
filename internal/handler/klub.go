package handler

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/service"
)

type JoinKlubRequest struct {
	KlubID string `json:"klub_id"`
}

func (h *Handler) JoinKlub(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleUser {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo korisnici se mogu pridružiti klubu.",
		})
	}

	var req JoinKlubRequest
	if err := c.BodyParser(&req); err != nil || req.KlubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Neispravan ili nedostaje klub_id.",
		})
	}
	klubID, err := uuid.Parse(req.KlubID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Neispravan ili nedostaje klub_id.",
		})
	}

	if err := h.klubSvc.Join(c.Context(), userID, klubID); err != nil {
		if errors.Is(err, service.ErrKlubNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("join-klub failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri pridruživanju klubu.",
		})
	}

	return c.JSON(fiber.Map{"message": "Uspješno si se pridružio klubu."})
}

func (h *Handler) MyKlub(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleUser {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo korisnici imaju pristup ovom podatku.",
		})
	}

	klub, err := h.klubSvc.MyKlub(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoKlub), errors.Is(err, service.ErrKlubMissing):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Greška na serveru.",
			})
		}
	}

	return c.JSON(fiber.Map{
		"klub": fiber.Map{
			"id":          klub.ID,
			"email":       klub.Email,
			"naziv_kluba": klub.NazivKluba,
			"grad":        klub.Grad,
			"oib":         klub.OIB,
			"logo_url":    klub.LogoURL,
		},
	})
}

// Clubs is the public club directory; no auth required.
func (h *Handler) Clubs(c *fiber.Ctx) error {
	clubs, err := h.klubSvc.ListClubs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri dohvaćanju klubova.",
		})
	}
	return c.JSON(clubs)
}

func (h *Handler) ClubMembers(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu vidjeti članove.",
		})
	}

	members, err := h.klubSvc.ListMembers(c.Context(), klubID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri dohvaćanju članova.",
		})
	}
	return c.JSON(fiber.Map{"members": members})
}

func (h *Handler) ClubProfile(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu vidjeti svoje podatke.",
		})
	}

	klub, err := h.klubSvc.GetKlub(c.Context(), klubID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Klub nije pronađen.",
		})
	}

	return c.JSON(fiber.Map{
		"klub": fiber.Map{
			"id":                  klub.ID,
			"email":               klub.Email,
			"naziv_kluba":         klub.NazivKluba,
			"grad":                klub.Grad,
			"oib":                 klub.OIB,
			"logo_url":            klub.LogoURL,
			"referral_percentage": klub.ReferralPercentage,
			"stripe_account_id":   klub.StripeAccountID,
		},
	})
}

func (h *Handler) UploadLogo(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu uploadati logo.",
		})
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Logo nije poslan.",
		})
	}

	name := fmt.Sprintf("logo-%s-%d%s", klubID, time.Now().UnixMilli(), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.cfg.Server.UploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod uploada.",
		})
	}

	logoURL := h.cfg.Server.BaseURL + "/uploads/" + name
	if err := h.klubSvc.SetLogoURL(c.Context(), klubID, logoURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Logo je uploadan, ali nije spremljen u bazu.",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "✅ Logo uspješno postavljen!",
		"logo_url": logoURL,
	})
}
