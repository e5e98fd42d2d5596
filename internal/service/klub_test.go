package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/repository"
)

type fakeKlubStore struct {
	users map[uuid.UUID]*model.User
	logos map[uuid.UUID]string
}

func newFakeKlubStore() *fakeKlubStore {
	return &fakeKlubStore{
		users: map[uuid.UUID]*model.User{},
		logos: map[uuid.UUID]string{},
	}
}

func (f *fakeKlubStore) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeKlubStore) GetKlub(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok && u.Role == model.RoleKlub {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeKlubStore) SetKlub(_ context.Context, userID, klubID uuid.UUID) error {
	f.users[userID].KlubID = &klubID
	return nil
}

func (f *fakeKlubStore) SetLogoURL(_ context.Context, id uuid.UUID, logoURL string) error {
	f.logos[id] = logoURL
	return nil
}

func (f *fakeKlubStore) ListClubs(_ context.Context) ([]model.KlubSummary, error) {
	out := []model.KlubSummary{}
	for _, u := range f.users {
		if u.Role == model.RoleKlub {
			out = append(out, model.KlubSummary{ID: u.ID, NazivKluba: u.NazivKluba, Grad: u.Grad})
		}
	}
	return out, nil
}

func (f *fakeKlubStore) ListClubMembers(_ context.Context, klubID uuid.UUID) ([]model.Member, error) {
	out := []model.Member{}
	for _, u := range f.users {
		if u.Role == model.RoleUser && u.KlubID != nil && *u.KlubID == klubID {
			out = append(out, model.Member{ID: u.ID, Email: u.Email})
		}
	}
	return out, nil
}

func (f *fakeKlubStore) UpdateProfile(_ context.Context, id uuid.UUID, ime, prezime, datumRodenja *string) error {
	u := f.users[id]
	u.Ime, u.Prezime, u.DatumRodenja = ime, prezime, datumRodenja
	return nil
}

func TestJoinNotifiesClub(t *testing.T) {
	store := newFakeKlubStore()
	naziv := "NK Zagreb"
	klubID := uuid.New()
	store.users[klubID] = &model.User{ID: klubID, Role: model.RoleKlub, NazivKluba: &naziv}
	userID := uuid.New()
	store.users[userID] = &model.User{ID: userID, Role: model.RoleUser}

	notifier := &fakeNotifier{}
	svc := NewKlubService(store, notifier)

	require.NoError(t, svc.Join(context.Background(), userID, klubID))

	require.NotNil(t, store.users[userID].KlubID)
	assert.Equal(t, klubID, *store.users[userID].KlubID)

	require.Len(t, notifier.to, 1)
	assert.Equal(t, klubID, notifier.to[0])
	assert.Contains(t, notifier.events[0], "Novi član u klubu")
	assert.Contains(t, notifier.events[0], naziv)
}

func TestJoinUnknownClub(t *testing.T) {
	store := newFakeKlubStore()
	userID := uuid.New()
	store.users[userID] = &model.User{ID: userID, Role: model.RoleUser}
	svc := NewKlubService(store, &fakeNotifier{})

	err := svc.Join(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, ErrKlubNotFound)
	assert.Nil(t, store.users[userID].KlubID)
}

func TestJoinOverwritesMembership(t *testing.T) {
	store := newFakeKlubStore()
	first := uuid.New()
	second := uuid.New()
	store.users[first] = &model.User{ID: first, Role: model.RoleKlub}
	store.users[second] = &model.User{ID: second, Role: model.RoleKlub}
	userID := uuid.New()
	store.users[userID] = &model.User{ID: userID, Role: model.RoleUser}
	svc := NewKlubService(store, &fakeNotifier{})

	require.NoError(t, svc.Join(context.Background(), userID, first))
	require.NoError(t, svc.Join(context.Background(), userID, second))
	assert.Equal(t, second, *store.users[userID].KlubID)
}

func TestMyKlub(t *testing.T) {
	store := newFakeKlubStore()
	klubID := uuid.New()
	store.users[klubID] = &model.User{ID: klubID, Role: model.RoleKlub}
	userID := uuid.New()
	store.users[userID] = &model.User{ID: userID, Role: model.RoleUser, KlubID: &klubID}
	svc := NewKlubService(store, &fakeNotifier{})

	klub, err := svc.MyKlub(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, klubID, klub.ID)
}

func TestMyKlubWithoutMembership(t *testing.T) {
	store := newFakeKlubStore()
	userID := uuid.New()
	store.users[userID] = &model.User{ID: userID, Role: model.RoleUser}
	svc := NewKlubService(store, &fakeNotifier{})

	_, err := svc.MyKlub(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNoKlub)
}

func TestMyKlubDanglingMembership(t *testing.T) {
	store := newFakeKlubStore()
	gone := uuid.New()
	userID := uuid.New()
	store.users[userID] = &model.User{ID: userID, Role: model.RoleUser, KlubID: &gone}
	svc := NewKlubService(store, &fakeNotifier{})

	_, err := svc.MyKlub(context.Background(), userID)
	assert.ErrorIs(t, err, ErrKlubMissing)
}

func TestListMembersExcludesOtherClubs(t *testing.T) {
	store := newFakeKlubStore()
	klubID := uuid.New()
	other := uuid.New()
	store.users[klubID] = &model.User{ID: klubID, Role: model.RoleKlub}
	store.users[other] = &model.User{ID: other, Role: model.RoleKlub}

	memberID := uuid.New()
	store.users[memberID] = &model.User{ID: memberID, Email: "clan@example.com", Role: model.RoleUser, KlubID: &klubID}
	strayID := uuid.New()
	store.users[strayID] = &model.User{ID: strayID, Email: "drugi@example.com", Role: model.RoleUser, KlubID: &other}

	svc := NewKlubService(store, &fakeNotifier{})
	members, err := svc.ListMembers(context.Background(), klubID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "clan@example.com", members[0].Email)
}
