package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/repository"
)

var (
	ErrKlubNotFound = errors.New("Klub ne postoji.")
	ErrNoKlub       = errors.New("Korisnik nije pridružen nijednom klubu.")
	ErrKlubMissing  = errors.New("Klub nije pronađen.")
)

// Notifier pushes a best-effort real-time event. Implemented by
// realtime.Hub; absence of a live connection is never an error.
type Notifier interface {
	Notify(id uuid.UUID, title, message string)
}

type KlubStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetKlub(ctx context.Context, id uuid.UUID) (*model.User, error)
	SetKlub(ctx context.Context, userID, klubID uuid.UUID) error
	SetLogoURL(ctx context.Context, id uuid.UUID, logoURL string) error
	ListClubs(ctx context.Context) ([]model.KlubSummary, error)
	ListClubMembers(ctx context.Context, klubID uuid.UUID) ([]model.Member, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, ime, prezime, datumRodenja *string) error
}

type KlubService struct {
	store    KlubStore
	notifier Notifier
}

func NewKlubService(store KlubStore, notifier Notifier) *KlubService {
	return &KlubService{store: store, notifier: notifier}
}

// Join makes the caller a member of the club, overwriting any previous
// membership. The club gets a best-effort push about its new member.
func (s *KlubService) Join(ctx context.Context, userID, klubID uuid.UUID) error {
	klub, err := s.store.GetKlub(ctx, klubID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrKlubNotFound
		}
		return err
	}

	if err := s.store.SetKlub(ctx, userID, klub.ID); err != nil {
		return err
	}

	naziv := ""
	if klub.NazivKluba != nil {
		naziv = *klub.NazivKluba
	}
	s.notifier.Notify(klub.ID, "Novi član u klubu",
		fmt.Sprintf("Korisnik %s (email nepoznat) se pridružio vašem klubu %s.", userID, naziv))

	return nil
}

// MyKlub resolves the club the user belongs to.
func (s *KlubService) MyKlub(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.KlubID == nil {
		return nil, ErrNoKlub
	}

	klub, err := s.store.GetKlub(ctx, *user.KlubID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrKlubMissing
		}
		return nil, err
	}
	return klub, nil
}

func (s *KlubService) ListClubs(ctx context.Context) ([]model.KlubSummary, error) {
	return s.store.ListClubs(ctx)
}

func (s *KlubService) ListMembers(ctx context.Context, klubID uuid.UUID) ([]model.Member, error) {
	return s.store.ListClubMembers(ctx, klubID)
}

func (s *KlubService) GetKlub(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.store.GetKlub(ctx, id)
}

func (s *KlubService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.store.GetUserByID(ctx, id)
}

func (s *KlubService) UpdateProfile(ctx context.Context, id uuid.UUID, ime, prezime, datumRodenja *string) error {
	return s.store.UpdateProfile(ctx, id, ime, prezime, datumRodenja)
}

func (s *KlubService) SetLogoURL(ctx context.Context, id uuid.UUID, logoURL string) error {
	return s.store.SetLogoURL(ctx, id, logoURL)
}
