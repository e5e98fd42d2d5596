package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/service"
)

type RecordPaymentRequest struct {
	MemberID string   `json:"member_id"`
	Amount   *float64 `json:"amount"`
}

// RecordPayment is the core economic operation: one ledger insert per
// call, commission computed at write time. No idempotency protection, so
// submitting the same payment twice appends two entries.
func (h *Handler) RecordPayment(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu evidentirati uplate.",
		})
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil || req.MemberID == "" || req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nedostaju ili su neispravni parametri: member_id, amount.",
		})
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": service.ErrMemberNotFound.Error(),
		})
	}

	commission, err := h.paymentSvc.RecordPayment(c.Context(), klubID, memberID, *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrNotClubMember):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrKlubMissing):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("record-payment failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Greška kod spremanja isplate.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Uplata evidentirana i provizija isplaćena (ako je primjenjivo).",
		"commission": commission,
	})
}

func (h *Handler) CreatePaymentIntent(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu kreirati PaymentIntent.",
		})
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil || req.MemberID == "" || req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nedostaju ili su neispravni parametri: member_id, amount",
		})
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": service.ErrIntentMemberNotFound.Error(),
		})
	}

	clientSecret, err := h.paymentSvc.CreatePaymentIntent(c.Context(), klubID, memberID, *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIntentMemberNotFound), errors.Is(err, service.ErrIntentKlubNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrIntentNotClubMember), errors.Is(err, service.ErrStripeNotConnected):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("create-payment-intent failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Ne mogu kreirati PaymentIntent.",
			})
		}
	}

	return c.JSON(fiber.Map{"client_secret": clientSecret})
}

func (h *Handler) OnboardClub(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu se onboardati.",
		})
	}

	url, err := h.paymentSvc.OnboardClub(c.Context(), klubID)
	if err != nil {
		if errors.Is(err, service.ErrKlubMissing) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("stripe onboarding failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Ne mogu pokrenuti Stripe onboarding.",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
