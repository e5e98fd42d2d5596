package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/repository"
	"github.com/uzha1981/sport-za-sve-backend/internal/token"
)

type fakeAuthStore struct {
	byEmail  map[string]*model.User
	byCode   map[string]*model.User
	created  []*model.User
	verified []uuid.UUID
}

func newFakeAuthStore() *fakeAuthStore {
	return &fakeAuthStore{
		byEmail: map[string]*model.User{},
		byCode:  map[string]*model.User{},
	}
}

func (f *fakeAuthStore) add(u *model.User) {
	f.byEmail[u.Email] = u
	f.byCode[u.ReferralCode] = u
}

func (f *fakeAuthStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeAuthStore) GetUserByReferralCode(_ context.Context, code string) (*model.User, error) {
	if u, ok := f.byCode[code]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeAuthStore) CreateUser(_ context.Context, u *model.User) error {
	f.created = append(f.created, u)
	f.add(u)
	return nil
}

func (f *fakeAuthStore) SetVerified(_ context.Context, id uuid.UUID) error {
	f.verified = append(f.verified, id)
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendVerificationEmail(email, _ string) (string, error) {
	f.sent = append(f.sent, email)
	return "http://localhost:3001/api/verify-email?token=x", nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			JWTSecret: "test-secret",
			BaseURL:   "http://localhost:3001",
		},
	}
}

func TestRegister(t *testing.T) {
	store := newFakeAuthStore()
	mail := &fakeMailer{}
	svc := NewAuthService(store, mail, testConfig())

	user, signed, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "lozinka1",
	})
	require.NoError(t, err)

	assert.Equal(t, model.RoleUser, user.Role)
	assert.False(t, user.IsVerified)
	assert.Len(t, user.ReferralCode, 8)
	assert.Nil(t, user.ReferredBy)
	assert.Nil(t, user.ReferralPercentage)

	// The password is stored hashed, never verbatim.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("lozinka1")))

	claims, err := token.Parse("test-secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)

	assert.Equal(t, []string{"ana@example.com"}, mail.sent)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeAuthStore()
	store.add(&model.User{ID: uuid.New(), Email: "ana@example.com", ReferralCode: "AAAAAAAA"})
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "lozinka1",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Empty(t, store.created)
}

func TestRegisterWithReferral(t *testing.T) {
	store := newFakeAuthStore()
	referrer := &model.User{ID: uuid.New(), Email: "ref@example.com", ReferralCode: "REFCODE1"}
	store.add(referrer)
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	user, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "novi@example.com",
		Password: "lozinka1",
		Referral: "REFCODE1",
	})
	require.NoError(t, err)
	require.NotNil(t, user.ReferredBy)
	assert.Equal(t, referrer.ID, *user.ReferredBy)
}

func TestRegisterInvalidReferral(t *testing.T) {
	store := newFakeAuthStore()
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "novi@example.com",
		Password: "lozinka1",
		Referral: "NEMANEMA",
	})
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
}

func TestRegisterKlubDefaults(t *testing.T) {
	store := newFakeAuthStore()
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	// The generic path defaults the percentage to 10 for clubs.
	user, _, err := svc.Register(context.Background(), RegisterInput{
		Email:      "klub@example.com",
		Password:   "lozinka1",
		Role:       model.RoleKlub,
		NazivKluba: "NK Zagreb",
		Grad:       "Zagreb",
		OIB:        "12345678901",
	})
	require.NoError(t, err)
	require.NotNil(t, user.ReferralPercentage)
	assert.Equal(t, 10, *user.ReferralPercentage)

	// The dedicated club path defaults it to 0.
	user, _, err = svc.RegisterKlub(context.Background(), RegisterInput{
		Email:      "klub2@example.com",
		Password:   "lozinka1",
		NazivKluba: "NK Split",
		Grad:       "Split",
		OIB:        "12345678902",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleKlub, user.Role)
	require.NotNil(t, user.ReferralPercentage)
	assert.Equal(t, 0, *user.ReferralPercentage)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("lozinka1"), 10)
	require.NoError(t, err)

	store := newFakeAuthStore()
	store.add(&model.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		Password:     string(hashed),
		Role:         model.RoleUser,
		IsVerified:   true,
		ReferralCode: "AAAAAAAA",
	})
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	signed, err := svc.Login(context.Background(), "ana@example.com", "lozinka1")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)

	_, err = svc.Login(context.Background(), "ana@example.com", "kriva")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nema@example.com", "lozinka1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnverified(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("lozinka1"), 10)
	require.NoError(t, err)

	store := newFakeAuthStore()
	store.add(&model.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		Password:     string(hashed),
		Role:         model.RoleUser,
		ReferralCode: "AAAAAAAA",
	})
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	_, err = svc.Login(context.Background(), "ana@example.com", "lozinka1")
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestVerifyEmail(t *testing.T) {
	store := newFakeAuthStore()
	svc := NewAuthService(store, &fakeMailer{}, testConfig())

	id := uuid.New()
	signed, err := token.Sign("test-secret", id, "user")
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(context.Background(), signed))
	assert.Equal(t, []uuid.UUID{id}, store.verified)

	assert.Error(t, svc.VerifyEmail(context.Background(), "not-a-token"))
}

func TestGenerateReferralCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := GenerateReferralCode()
		require.NoError(t, err)
		assert.Len(t, code, 8)
		for _, ch := range code {
			assert.Contains(t, referralCodeAlphabet, string(ch))
		}
		seen[code] = true
	}
	// 100 draws from 62^8 colliding would point at a broken generator.
	assert.Greater(t, len(seen), 90)
}
