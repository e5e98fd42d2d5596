package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

type fakeReferralStore struct {
	referrals []model.Referral
	payouts   []model.ReferralPayout
	sumByUser map[uuid.UUID]float64
	sumAll    float64
}

func (f *fakeReferralStore) ListReferralsByPayee(_ context.Context, userID uuid.UUID) ([]model.Referral, error) {
	out := []model.Referral{}
	for _, r := range f.referrals {
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReferralStore) SumCommissionByPayee(_ context.Context, userID uuid.UUID) (float64, error) {
	return f.sumByUser[userID], nil
}

func (f *fakeReferralStore) SumAllCommissions(_ context.Context) (float64, error) {
	return f.sumAll, nil
}

func (f *fakeReferralStore) ListAllPayouts(_ context.Context) ([]model.ReferralPayout, error) {
	return f.payouts, nil
}

func TestMyEarningsRounds(t *testing.T) {
	userID := uuid.New()
	store := &fakeReferralStore{sumByUser: map[uuid.UUID]float64{userID: 10.005}}
	svc := NewReferralService(store)

	total, err := svc.MyEarnings(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 10.01, total)
}

func TestMyEarningsEmpty(t *testing.T) {
	store := &fakeReferralStore{sumByUser: map[uuid.UUID]float64{}}
	svc := NewReferralService(store)

	total, err := svc.MyEarnings(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalPayoutsFormat(t *testing.T) {
	svc := NewReferralService(&fakeReferralStore{sumAll: 20})

	total, err := svc.TotalPayouts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "20.00", total)

	svc = NewReferralService(&fakeReferralStore{sumAll: 12.5})
	total, err = svc.TotalPayouts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12.50", total)
}

func TestMyReferralsFiltersByPayee(t *testing.T) {
	me := uuid.New()
	other := uuid.New()
	store := &fakeReferralStore{referrals: []model.Referral{
		{ID: uuid.New(), UserID: &me, CommissionAmount: 5},
		{ID: uuid.New(), UserID: &other, CommissionAmount: 7},
		{ID: uuid.New(), UserID: nil, CommissionAmount: 0},
	}}
	svc := NewReferralService(store)

	referrals, err := svc.MyReferrals(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.Equal(t, 5.0, referrals[0].CommissionAmount)
}
