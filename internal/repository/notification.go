package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

func (r *Repository) CreateNotification(ctx context.Context, n *model.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, naslov, poruka)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		n.ID, n.RecipientID, n.SenderID, n.Naslov, n.Poruka,
	).Scan(&n.CreatedAt)
}

func (r *Repository) ListNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID) ([]model.Notification, error) {
	notifications := []model.Notification{}
	query := `
		SELECT * FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &notifications, query, recipientID)
	return notifications, err
}

// MarkNotificationRead is scoped to the recipient; a foreign id matches
// zero rows silently.
func (r *Repository) MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2", id, recipientID)
	return err
}

func (r *Repository) CreateMessage(ctx context.Context, m *model.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, recipient_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		m.ID, m.SenderID, m.RecipientID, m.Message,
	).Scan(&m.CreatedAt)
}
