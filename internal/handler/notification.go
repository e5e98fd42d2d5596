package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/middleware"
)

type CreateNotificationRequest struct {
	RecipientID string `json:"recipient_id"`
	Naslov      string `json:"naslov"`
	Poruka      string `json:"poruka"`
}

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Message     string `json:"message"`
}

func (h *Handler) CreateNotification(c *fiber.Ctx) error {
	senderID := middleware.GetUserID(c)

	var req CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil || req.RecipientID == "" || req.Naslov == "" || req.Poruka == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nedostaju obavezna polja.",
		})
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nedostaju obavezna polja.",
		})
	}

	if err := h.notificationSvc.Create(c.Context(), recipientID, senderID, req.Naslov, req.Poruka); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri slanju notifikacije.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "✅ Notifikacija uspješno poslana.",
	})
}

func (h *Handler) MyNotifications(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	notifications, err := h.notificationSvc.ListMine(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška kod dohvaćanja notifikacija.",
		})
	}
	return c.JSON(fiber.Map{"notifikacije": notifications})
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri označavanju notifikacije.",
		})
	}

	if err := h.notificationSvc.MarkRead(c.Context(), id, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri označavanju notifikacije.",
		})
	}

	return c.JSON(fiber.Map{"message": "✅ Notifikacija označena kao pročitana."})
}

func (h *Handler) SendMessage(c *fiber.Ctx) error {
	senderID := middleware.GetUserID(c)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil || req.RecipientID == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nedostaju obavezna polja.",
		})
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nedostaju obavezna polja.",
		})
	}

	if err := h.notificationSvc.SendMessage(c.Context(), senderID, recipientID, req.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Greška pri slanju poruke.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "✅ Poruka uspješno poslana.",
	})
}
