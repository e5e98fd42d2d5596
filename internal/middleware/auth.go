package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/token"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// Protected verifies the bearer token and exposes {sub, role} to the
// handler. Verification state of the account is not checked here; that is
// login's concern.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		parts := strings.SplitN(auth, " ", 2)
		if auth == "" || len(parts) != 2 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token nije poslan",
			})
		}

		claims, err := token.Parse(cfg.Server.JWTSecret, parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Neispravan token",
			})
		}

		subject, err := claims.SubjectID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Neispravan token",
			})
		}

		c.Locals(UserIDKey, subject)
		c.Locals(RoleKey, model.Role(claims.Role))

		return c.Next()
	}
}

// RequireAdmin gates administrator-only routes. Must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != model.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Pristup dozvoljen samo adminima.",
			})
		}
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	id, ok := c.Locals(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func GetRole(c *fiber.Ctx) model.Role {
	role, ok := c.Locals(RoleKey).(model.Role)
	if !ok {
		return ""
	}
	return role
}
