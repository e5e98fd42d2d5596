package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/service"
	"github.com/uzha1981/sport-za-sve-backend/internal/token"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
	Referral string `json:"referral"`

	NazivKluba         string `json:"naziv_kluba"`
	Grad               string `json:"grad"`
	OIB                string `json:"oib"`
	ReferralPercentage *int   `json:"referral_percentage"`
}

type RegisterKlubRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	NazivKluba         string `json:"naziv_kluba" validate:"required"`
	Grad               string `json:"grad" validate:"required"`
	OIB                string `json:"oib" validate:"required,len=11,numeric"`
	ReferralPercentage *int   `json:"referral_percentage" validate:"omitempty,min=0,max=100"`

	// On this path the referral code arrives under referred_by.
	ReferredBy string `json:"referred_by"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"msg": "Invalid body", "path": "body"}},
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": h.validationErrors(err),
		})
	}

	user, signed, err := h.authSvc.Register(c.Context(), service.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		Role:               model.Role(req.Role),
		Referral:           req.Referral,
		NazivKluba:         req.NazivKluba,
		Grad:               req.Grad,
		OIB:                req.OIB,
		ReferralPercentage: req.ReferralPercentage,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrInvalidReferralCode):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("register failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Greška kod spremanja korisnika.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Korisnik uspješno registriran!",
		"data":    user,
		"token":   signed,
	})
}

func (h *Handler) RegisterKlub(c *fiber.Ctx) error {
	var req RegisterKlubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"msg": "Invalid body", "path": "body"}},
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": h.validationErrors(err),
		})
	}

	user, signed, err := h.authSvc.RegisterKlub(c.Context(), service.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		Referral:           req.ReferredBy,
		NazivKluba:         req.NazivKluba,
		Grad:               req.Grad,
		OIB:                req.OIB,
		ReferralPercentage: req.ReferralPercentage,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrInvalidReferralCode):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("register-klub failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Greška kod registracije kluba.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Klub uspješno registriran!",
		"data":    user,
		"token":   signed,
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": service.ErrInvalidCredentials.Error(),
		})
	}

	signed, err := h.authSvc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("login failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Greška na serveru.",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Prijava uspješna!",
		"token":   signed,
	})
}

const verifiedPage = `<!DOCTYPE html><html lang="hr"><head><meta charset="UTF-8" />
<title>Email potvrđen ✅</title><meta name="viewport" content="width=device-width, initial-scale=1.0" />
<style>body { font-family: 'Segoe UI', sans-serif; background-color: #f6f9fc; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; }
.card { background: white; padding: 40px; border-radius: 12px; box-shadow: 0 8px 24px rgba(0, 0, 0, 0.08); text-align: center; max-width: 400px; }
h1 { color: #28a745; } a.button { display: inline-block; margin-top: 20px; padding: 10px 20px; background-color: #28a745; color: white; text-decoration: none; border-radius: 6px; }
a.button:hover { background-color: #218838; }</style></head><body>
<div class="card"><h1>Email potvrđen ✅</h1><p>Hvala što ste potvrdili svoju email adresu.<br />Sada se možete prijaviti u aplikaciju.</p>
<a class="button" href="/login">Prijavi se</a></div></body></html>`

// VerifyEmail flips the account's verification flag and renders a small
// confirmation page. Verification and authentication are orthogonal; the
// registration token doubles as the verification token.
func (h *Handler) VerifyEmail(c *fiber.Ctx) error {
	raw := c.Query("token")
	if err := h.authSvc.VerifyEmail(c.Context(), raw); err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).SendString("❌ Token nije ispravan ili je istekao.")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Greška pri verifikaciji korisnika.")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(verifiedPage)
}
