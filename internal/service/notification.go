package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

type NotificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error
	CreateMessage(ctx context.Context, m *model.Message) error
}

type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) Create(ctx context.Context, recipientID, senderID uuid.UUID, naslov, poruka string) error {
	return s.store.CreateNotification(ctx, &model.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Naslov:      naslov,
		Poruka:      poruka,
	})
}

func (s *NotificationService) ListMine(ctx context.Context, recipientID uuid.UUID) ([]model.Notification, error) {
	return s.store.ListNotificationsByRecipient(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return s.store.MarkNotificationRead(ctx, id, recipientID)
}

func (s *NotificationService) SendMessage(ctx context.Context, senderID, recipientID uuid.UUID, text string) error {
	return s.store.CreateMessage(ctx, &model.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     text,
	})
}
