package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the persisted inbox-style message. The real-time push
// channel is separate and ephemeral (see internal/realtime).
type Notification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecipientID uuid.UUID `json:"recipient_id" db:"recipient_id"`
	SenderID    uuid.UUID `json:"sender_id" db:"sender_id"`
	Naslov      string    `json:"naslov" db:"naslov"`
	Poruka      string    `json:"poruka" db:"poruka"`
	IsRead      bool      `json:"is_read" db:"is_read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Message struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SenderID    uuid.UUID `json:"sender_id" db:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id" db:"recipient_id"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
