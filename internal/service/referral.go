package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

type ReferralStore interface {
	ListReferralsByPayee(ctx context.Context, userID uuid.UUID) ([]model.Referral, error)
	SumCommissionByPayee(ctx context.Context, userID uuid.UUID) (float64, error)
	SumAllCommissions(ctx context.Context) (float64, error)
	ListAllPayouts(ctx context.Context) ([]model.ReferralPayout, error)
}

type ReferralService struct {
	store ReferralStore
}

func NewReferralService(store ReferralStore) *ReferralService {
	return &ReferralService{store: store}
}

// MyEarnings sums the caller's commissions, rounded to 2 decimals. The
// ledger stores commissions as computed; rounding happens only here.
func (s *ReferralService) MyEarnings(ctx context.Context, userID uuid.UUID) (float64, error) {
	sum, err := s.store.SumCommissionByPayee(ctx, userID)
	if err != nil {
		return 0, err
	}
	return math.Round(sum*100) / 100, nil
}

func (s *ReferralService) MyReferrals(ctx context.Context, userID uuid.UUID) ([]model.Referral, error) {
	return s.store.ListReferralsByPayee(ctx, userID)
}

// TotalPayouts sums commission across the whole ledger, formatted as a
// fixed 2-decimal string.
func (s *ReferralService) TotalPayouts(ctx context.Context) (string, error) {
	sum, err := s.store.SumAllCommissions(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", sum), nil
}

func (s *ReferralService) AllPayouts(ctx context.Context) ([]model.ReferralPayout, error) {
	return s.store.ListAllPayouts(ctx)
}
