package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/uzha1981/sport-za-sve-backend/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, password, role, is_verified, referral_code, referred_by,
			naziv_kluba, grad, oib, referral_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		user.ID,
		user.Email,
		user.Password,
		user.Role,
		user.IsVerified,
		user.ReferralCode,
		user.ReferredBy,
		user.NazivKluba,
		user.Grad,
		user.OIB,
		user.ReferralPercentage,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE referral_code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetKlub resolves an account by id AND role=klub.
func (r *Repository) GetKlub(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1 AND role = 'klub'", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) SetVerified(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET is_verified = true, updated_at = NOW() WHERE id = $1", id)
	return err
}

func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, ime, prezime, datumRodenja *string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET ime = $2, prezime = $3, datum_rodenja = $4, updated_at = NOW() WHERE id = $1",
		id, ime, prezime, datumRodenja)
	return err
}

// SetKlub overwrites the caller's club membership. Rejoining keeps no
// history.
func (r *Repository) SetKlub(ctx context.Context, userID, klubID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET klub_id = $2, updated_at = NOW() WHERE id = $1", userID, klubID)
	return err
}

func (r *Repository) SetLogoURL(ctx context.Context, id uuid.UUID, logoURL string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET logo_url = $2, updated_at = NOW() WHERE id = $1", id, logoURL)
	return err
}

func (r *Repository) SetStripeAccountID(ctx context.Context, id uuid.UUID, accountID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET stripe_account_id = $2, updated_at = NOW() WHERE id = $1", id, accountID)
	return err
}

func (r *Repository) ListClubs(ctx context.Context) ([]model.KlubSummary, error) {
	clubs := []model.KlubSummary{}
	err := r.db.SelectContext(ctx, &clubs,
		"SELECT id, naziv_kluba, grad, oib, logo_url FROM users WHERE role = 'klub'")
	return clubs, err
}

func (r *Repository) ListClubMembers(ctx context.Context, klubID uuid.UUID) ([]model.Member, error) {
	members := []model.Member{}
	err := r.db.SelectContext(ctx, &members,
		"SELECT id, email FROM users WHERE klub_id = $1 AND role = 'user'", klubID)
	return members, err
}
