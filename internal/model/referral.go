package model

import (
	"time"

	"github.com/google/uuid"
)

// Referral is one ledger entry, appended when a club records a member
// payment. UserID is the payee (the referrer) and stays NULL when the
// paying member was never referred; CommissionAmount is then 0. Entries
// are immutable once inserted.
type Referral struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	UserID           *uuid.UUID `json:"user_id" db:"user_id"`
	ReferredUserID   uuid.UUID  `json:"referred_user_id" db:"referred_user_id"`
	ClubID           uuid.UUID  `json:"club_id" db:"club_id"`
	Amount           float64    `json:"amount" db:"amount"`
	CommissionAmount float64    `json:"commission_amount" db:"commission_amount"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// ReferralPayout is the admin listing projection, joined with the club
// that reported the payment.
type ReferralPayout struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	Amount           float64    `json:"amount" db:"amount"`
	CommissionAmount float64    `json:"commission_amount" db:"commission_amount"`
	UserID           *uuid.UUID `json:"user_id" db:"user_id"`
	ReferredUserID   uuid.UUID  `json:"referred_user_id" db:"referred_user_id"`
	ClubID           uuid.UUID  `json:"club_id" db:"club_id"`
	KlubNaziv        *string    `json:"naziv_kluba" db:"naziv_kluba"`
	KlubGrad         *string    `json:"grad" db:"grad"`
	KlubEmail        string     `json:"email" db:"email"`
}
