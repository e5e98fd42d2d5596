package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/config"
	"github.com/uzha1981/sport-za-sve-backend/internal/model"
	"github.com/uzha1981/sport-za-sve-backend/internal/repository"
)

var (
	ErrMemberNotFound = errors.New("Korisnik nije pronađen.")
	ErrNotClubMember  = errors.New("Korisnik nije član vašeg kluba.")

	// The payment-intent path reports the same situations with its own
	// wording and, for a missing member, a different status code.
	ErrIntentMemberNotFound = errors.New("Novi član nije pronađen.")
	ErrIntentNotClubMember  = errors.New("Korisnik nije član ovog kluba.")
	ErrIntentKlubNotFound   = errors.New("Klub nije pronađen ili nema postavljen referral postotak.")
	ErrStripeNotConnected   = errors.New("Klub nije povezao Stripe račun.")
)

type PaymentStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetKlub(ctx context.Context, id uuid.UUID) (*model.User, error)
	SetStripeAccountID(ctx context.Context, id uuid.UUID, accountID string) error
	CreateReferral(ctx context.Context, referral *model.Referral) error
}

// StripeClient is the slice of the payment platform this service uses.
type StripeClient interface {
	CreateExpressAccount(email string) (string, error)
	CreateAccountLink(accountID, refreshURL, returnURL string) (string, error)
	CreatePaymentIntent(amountCents, applicationFeeCents int64, destination string, metadata map[string]string) (string, error)
}

type PaymentService struct {
	store    PaymentStore
	notifier Notifier
	stripe   StripeClient
	cfg      *config.Config
}

func NewPaymentService(store PaymentStore, notifier Notifier, stripe StripeClient, cfg *config.Config) *PaymentService {
	return &PaymentService{store: store, notifier: notifier, stripe: stripe, cfg: cfg}
}

// RecordPayment validates that the member belongs to the reporting club,
// computes the referral commission and appends one ledger entry.
//
// The commission rate is the REPORTING club's configured percentage, not
// the referrer's club's. The sequence is independent reads and one
// terminal insert: no transaction, no idempotency key, so a retried
// request appends a second entry.
func (s *PaymentService) RecordPayment(ctx context.Context, klubID, memberID uuid.UUID, amount float64) (float64, error) {
	member, err := s.store.GetUserByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrMemberNotFound
		}
		return 0, err
	}

	if member.KlubID == nil || *member.KlubID != klubID {
		return 0, ErrNotClubMember
	}

	commission := 0.0
	if member.ReferredBy != nil {
		klub, err := s.store.GetKlub(ctx, klubID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return 0, ErrKlubMissing
			}
			return 0, err
		}
		commission = amount * float64(klub.ReferralPct()) / 100
	}

	entry := &model.Referral{
		ID:               uuid.New(),
		UserID:           member.ReferredBy,
		ReferredUserID:   memberID,
		ClubID:           klubID,
		Amount:           amount,
		CommissionAmount: commission,
	}
	if err := s.store.CreateReferral(ctx, entry); err != nil {
		return 0, err
	}

	if member.ReferredBy != nil {
		s.notifier.Notify(*member.ReferredBy, "Nova provizija",
			fmt.Sprintf("Dobio si %.2f € od uplata člana %s.", commission, member.Email))
	}

	return commission, nil
}

// CreatePaymentIntent hands the fee split to Stripe: the reporting club's
// referral percentage plus a 3%% platform fee, each floored on cents.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, klubID, memberID uuid.UUID, amount float64) (string, error) {
	member, err := s.store.GetUserByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrIntentMemberNotFound
		}
		return "", err
	}
	if member.KlubID == nil || *member.KlubID != klubID {
		return "", ErrIntentNotClubMember
	}

	klub, err := s.store.GetKlub(ctx, klubID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrIntentKlubNotFound
		}
		return "", err
	}
	if klub.StripeAccountID == nil || *klub.StripeAccountID == "" {
		return "", ErrStripeNotConnected
	}

	amountCents := int64(math.Round(amount * 100))
	referralCents := amountCents * int64(klub.ReferralPct()) / 100
	platformCents := amountCents * 3 / 100

	referredBy := ""
	if member.ReferredBy != nil {
		referredBy = member.ReferredBy.String()
	}

	return s.stripe.CreatePaymentIntent(amountCents, referralCents+platformCents, *klub.StripeAccountID, map[string]string{
		"member_id":   memberID.String(),
		"club_id":     klubID.String(),
		"referred_by": referredBy,
	})
}

// OnboardClub returns a Stripe onboarding link for the club, creating the
// connected account first if the club has none yet.
func (s *PaymentService) OnboardClub(ctx context.Context, klubID uuid.UUID) (string, error) {
	klub, err := s.store.GetKlub(ctx, klubID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrKlubMissing
		}
		return "", err
	}

	returnURL := s.cfg.Server.BaseURL + "/club-profile"

	if klub.StripeAccountID != nil && *klub.StripeAccountID != "" {
		return s.stripe.CreateAccountLink(*klub.StripeAccountID, returnURL, returnURL)
	}

	accountID, err := s.stripe.CreateExpressAccount(klub.Email)
	if err != nil {
		return "", err
	}

	// Onboarding can proceed even if persisting the account id fails.
	if err := s.store.SetStripeAccountID(ctx, klubID, accountID); err != nil {
		log.Printf("failed to save stripe account id for %s: %v", klubID, err)
	}

	return s.stripe.CreateAccountLink(accountID, returnURL, returnURL)
}
