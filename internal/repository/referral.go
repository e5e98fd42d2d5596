package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

// CreateReferral appends one ledger entry. There is no update or delete
// path; the ledger is insert-only.
func (r *Repository) CreateReferral(ctx context.Context, referral *model.Referral) error {
	query := `
		INSERT INTO referrals (id, user_id, referred_user_id, club_id, amount, commission_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		referral.ID,
		referral.UserID,
		referral.ReferredUserID,
		referral.ClubID,
		referral.Amount,
		referral.CommissionAmount,
	).Scan(&referral.CreatedAt)
}

func (r *Repository) ListReferralsByPayee(ctx context.Context, userID uuid.UUID) ([]model.Referral, error) {
	referrals := []model.Referral{}
	query := `
		SELECT * FROM referrals
		WHERE user_id = $1
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &referrals, query, userID)
	return referrals, err
}

// SumCommissionByPayee is a full scan-and-reduce; correctness, not
// performance, is the contract.
func (r *Repository) SumCommissionByPayee(ctx context.Context, userID uuid.UUID) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(commission_amount), 0) FROM referrals WHERE user_id = $1", userID)
	return sum, err
}

func (r *Repository) SumAllCommissions(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(commission_amount), 0) FROM referrals")
	return sum, err
}

func (r *Repository) ListAllPayouts(ctx context.Context) ([]model.ReferralPayout, error) {
	payouts := []model.ReferralPayout{}
	query := `
		SELECT r.id, r.created_at, r.amount, r.commission_amount,
			r.user_id, r.referred_user_id, r.club_id,
			k.naziv_kluba, k.grad, k.email
		FROM referrals r
		INNER JOIN users k ON k.id = r.club_id
		ORDER BY r.created_at DESC`
	err := r.db.SelectContext(ctx, &payouts, query)
	return payouts, err
}
