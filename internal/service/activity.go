package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *model.Activity) error
	ListActivities(ctx context.Context) ([]model.ActivityWithKlub, error)
	ListActivitiesByKlub(ctx context.Context, klubID uuid.UUID) ([]model.Activity, error)
	UpdateActivity(ctx context.Context, activity *model.Activity) error
	DeleteActivity(ctx context.Context, id, klubID uuid.UUID) error
}

type ActivityService struct {
	store    ActivityStore
	notifier Notifier
}

func NewActivityService(store ActivityStore, notifier Notifier) *ActivityService {
	return &ActivityService{store: store, notifier: notifier}
}

type ActivityInput struct {
	Naziv    string
	Opis     string
	Lokacija string
	Datum    string
	Vrijeme  string
}

func (s *ActivityService) Create(ctx context.Context, klubID uuid.UUID, in ActivityInput) (*model.Activity, error) {
	activity := &model.Activity{
		ID:       uuid.New(),
		KlubID:   klubID,
		Naziv:    in.Naziv,
		Opis:     in.Opis,
		Lokacija: in.Lokacija,
		Datum:    in.Datum,
		Vrijeme:  in.Vrijeme,
	}
	if err := s.store.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}

	s.notifier.Notify(klubID, "Nova aktivnost",
		fmt.Sprintf("Dodana je nova aktivnost: %s.", in.Naziv))

	return activity, nil
}

func (s *ActivityService) ListAll(ctx context.Context) ([]model.ActivityWithKlub, error) {
	return s.store.ListActivities(ctx)
}

func (s *ActivityService) ListMine(ctx context.Context, klubID uuid.UUID) ([]model.Activity, error) {
	return s.store.ListActivitiesByKlub(ctx, klubID)
}

// Update is scoped by id and owner. Updating an activity the caller does
// not own matches zero rows and still succeeds.
func (s *ActivityService) Update(ctx context.Context, id, klubID uuid.UUID, in ActivityInput) error {
	return s.store.UpdateActivity(ctx, &model.Activity{
		ID:       id,
		KlubID:   klubID,
		Naziv:    in.Naziv,
		Opis:     in.Opis,
		Lokacija: in.Lokacija,
		Datum:    in.Datum,
		Vrijeme:  in.Vrijeme,
	})
}

func (s *ActivityService) Delete(ctx context.Context, id, klubID uuid.UUID) error {
	return s.store.DeleteActivity(ctx, id, klubID)
}
