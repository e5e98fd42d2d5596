package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/repository"
	"github.com/uzha1981/sport-za-sve-backend/internal/token"
)

var (
	ErrEmailExists         = errors.New("Korisnik već postoji.")
	ErrInvalidReferralCode = errors.New("Neispravan referral kod.")
	ErrInvalidCredentials  = errors.New("Neispravan email ili lozinka.")
	ErrNotVerified         = errors.New("Molimo verificirajte email.")
)

const referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// AuthStore is the slice of the repository the auth service needs.
type AuthStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	SetVerified(ctx context.Context, id uuid.UUID) error
}

// EmailSender delivers the verification link; in test contexts it
// short-circuits and returns the link instead of sending.
type EmailSender interface {
	SendVerificationEmail(email, verificationToken string) (string, error)
}

type AuthService struct {
	store  AuthStore
	mailer EmailSender
	cfg    *config.Config
}

func NewAuthService(store AuthStore, mailer EmailSender, cfg *config.Config) *AuthService {
	return &AuthService{store: store, mailer: mailer, cfg: cfg}
}

type RegisterInput struct {
	Email    string
	Password string
	Role     model.Role
	Referral string

	// Klub-only fields, used when Role is klub.
	NazivKluba         string
	Grad               string
	OIB                string
	ReferralPercentage *int
}

// Register creates an account of any role. A supplied referral code must
// resolve to an existing account; the new account gets its own fresh code.
// The returned token is valid immediately, before verification.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}

	var referredBy *uuid.UUID
	if in.Referral != "" {
		referrer, err := s.store.GetUserByReferralCode(ctx, in.Referral)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, "", ErrInvalidReferralCode
			}
			return nil, "", err
		}
		referredBy = &referrer.ID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, "", err
	}

	code, err := GenerateReferralCode()
	if err != nil {
		return nil, "", err
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		Password:     string(hashed),
		Role:         role,
		IsVerified:   false,
		ReferralCode: code,
		ReferredBy:   referredBy,
	}

	if role == model.RoleKlub {
		user.NazivKluba = &in.NazivKluba
		user.Grad = &in.Grad
		user.OIB = &in.OIB
		pct := 10
		if in.ReferralPercentage != nil {
			pct = *in.ReferralPercentage
		}
		user.ReferralPercentage = &pct
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	signed, err := token.Sign(s.cfg.Server.JWTSecret, user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	if _, err := s.mailer.SendVerificationEmail(user.Email, signed); err != nil {
		return nil, "", err
	}

	return user, signed, nil
}

// RegisterKlub is the dedicated club registration path. Unlike Register,
// an omitted percentage defaults to 0 here.
func (s *AuthService) RegisterKlub(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if in.ReferralPercentage == nil {
		zero := 0
		in.ReferralPercentage = &zero
	}
	in.Role = model.RoleKlub
	return s.Register(ctx, in)
}

// Login requires a verified account; the registration token being usable
// elsewhere does not bypass this.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.IsVerified {
		return "", ErrNotVerified
	}

	return token.Sign(s.cfg.Server.JWTSecret, user.ID, string(user.Role))
}

// VerifyEmail flips the verification flag for the token's subject.
func (s *AuthService) VerifyEmail(ctx context.Context, raw string) error {
	claims, err := token.Parse(s.cfg.Server.JWTSecret, raw)
	if err != nil {
		return err
	}
	subject, err := claims.SubjectID()
	if err != nil {
		return token.ErrInvalidToken
	}
	return s.store.SetVerified(ctx, subject)
}

// GenerateReferralCode draws 8 characters uniformly from the 62-character
// alphanumeric alphabet. Uniqueness rests on the store's unique constraint;
// there is no retry loop.
func GenerateReferralCode() (string, error) {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(referralCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = referralCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
