package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/service"
)

type ActivityRequest struct {
	Naziv    string `json:"naziv"`
	Opis     string `json:"opis"`
	Lokacija string `json:"lokacija"`
	Datum    string `json:"datum"`
	Vrijeme  string `json:"vrijeme"`
}

func (r ActivityRequest) input() service.ActivityInput {
	return service.ActivityInput{
		Naziv:    r.Naziv,
		Opis:     r.Opis,
		Lokacija: r.Lokacija,
		Datum:    r.Datum,
		Vrijeme:  r.Vrijeme,
	}
}

func (h *Handler) CreateActivity(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu dodavati aktivnosti.",
		})
	}

	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri unosu aktivnosti.",
		})
	}

	if _, err := h.activitySvc.Create(c.Context(), klubID, req.input()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri unosu aktivnosti.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "✅ Aktivnost uspješno dodana!",
	})
}

// Activities is the calendar listing: every activity with the hosting
// club's display name, ordered by date.
func (h *Handler) Activities(c *fiber.Ctx) error {
	activities, err := h.activitySvc.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri dohvaćanju aktivnosti.",
		})
	}

	out := make([]fiber.Map, 0, len(activities))
	for _, a := range activities {
		out = append(out, fiber.Map{
			"id":       a.ID,
			"naziv":    a.Naziv,
			"opis":     a.Opis,
			"lokacija": a.Lokacija,
			"datum":    a.Datum,
			"vrijeme":  a.Vrijeme,
			"klub": fiber.Map{
				"id":          a.KlubID,
				"naziv_kluba": a.KlubNaziv,
			},
		})
	}
	return c.JSON(out)
}

func (h *Handler) MyActivities(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu vidjeti svoje aktivnosti.",
		})
	}

	activities, err := h.activitySvc.ListMine(c.Context(), klubID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod dohvaćanja aktivnosti.",
		})
	}
	return c.JSON(fiber.Map{"aktivnosti": activities})
}

// UpdateActivity is scoped by id and owner; an id owned by another club
// matches nothing and still reports success.
func (h *Handler) UpdateActivity(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu uređivati aktivnosti.",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri uređivanju aktivnosti.",
		})
	}

	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri uređivanju aktivnosti.",
		})
	}

	if err := h.activitySvc.Update(c.Context(), id, klubID, req.input()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri uređivanju aktivnosti.",
		})
	}

	return c.JSON(fiber.Map{"message": "✅ Aktivnost uspješno uređena!"})
}

func (h *Handler) DeleteActivity(c *fiber.Ctx) error {
	klubID := middleware.GetUserID(c)
	if middleware.GetRole(c) != model.RoleKlub {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Samo klubovi mogu brisati aktivnosti.",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri brisanju aktivnosti.",
		})
	}

	if err := h.activitySvc.Delete(c.Context(), id, klubID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri brisanju aktivnosti.",
		})
	}

	return c.JSON(fiber.Map{"message": "✅ Aktivnost uspješno obrisana!"})
}
