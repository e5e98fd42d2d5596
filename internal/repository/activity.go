package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

func (r *Repository) CreateActivity(ctx context.Context, activity *model.Activity) error {
	query := `
		INSERT INTO activities (id, klub_id, naziv, opis, lokacija, datum, vrijeme)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		activity.ID,
		activity.KlubID,
		activity.Naziv,
		activity.Opis,
		activity.Lokacija,
		activity.Datum,
		activity.Vrijeme,
	).Scan(&activity.CreatedAt)
}

func (r *Repository) ListActivities(ctx context.Context) ([]model.ActivityWithKlub, error) {
	activities := []model.ActivityWithKlub{}
	query := `
		SELECT a.*, k.naziv_kluba AS klub_naziv
		FROM activities a
		INNER JOIN users k ON k.id = a.klub_id
		ORDER BY a.datum ASC`
	err := r.db.SelectContext(ctx, &activities, query)
	return activities, err
}

func (r *Repository) ListActivitiesByKlub(ctx context.Context, klubID uuid.UUID) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := r.db.SelectContext(ctx, &activities,
		"SELECT * FROM activities WHERE klub_id = $1", klubID)
	return activities, err
}

// UpdateActivity is scoped by id AND owner. A mismatched owner matches
// zero rows and that is not reported as an error.
func (r *Repository) UpdateActivity(ctx context.Context, activity *model.Activity) error {
	query := `
		UPDATE activities SET naziv = $3, opis = $4, lokacija = $5, datum = $6, vrijeme = $7
		WHERE id = $1 AND klub_id = $2`
	_, err := r.db.ExecContext(ctx, query,
		activity.ID,
		activity.KlubID,
		activity.Naziv,
		activity.Opis,
		activity.Lokacija,
		activity.Datum,
		activity.Vrijeme,
	)
	return err
}

func (r *Repository) DeleteActivity(ctx context.Context, id, klubID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM activities WHERE id = $1 AND klub_id = $2", id, klubID)
	return err
}
