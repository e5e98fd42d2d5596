package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleKlub  Role = "klub"
	RoleAdmin Role = "admin"
)

// User is one row of the unified accounts table. Users, clubs and admins
// share it, distinguished by Role; the klub-only columns stay NULL for
// everyone else.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	Password     string     `json:"-" db:"password"`
	Role         Role       `json:"role" db:"role"`
	IsVerified   bool       `json:"is_verified" db:"is_verified"`
	ReferralCode string     `json:"referral_code" db:"referral_code"`
	ReferredBy   *uuid.UUID `json:"referred_by,omitempty" db:"referred_by"`
	KlubID       *uuid.UUID `json:"klub_id,omitempty" db:"klub_id"`

	// Profile fields, free-form at the validation layer.
	Ime          *string `json:"ime,omitempty" db:"ime"`
	Prezime      *string `json:"prezime,omitempty" db:"prezime"`
	DatumRodenja *string `json:"datum_rodenja,omitempty" db:"datum_rodenja"`

	// Klub-only fields.
	NazivKluba         *string `json:"naziv_kluba,omitempty" db:"naziv_kluba"`
	Grad               *string `json:"grad,omitempty" db:"grad"`
	OIB                *string `json:"oib,omitempty" db:"oib"`
	LogoURL            *string `json:"logo_url,omitempty" db:"logo_url"`
	ReferralPercentage *int    `json:"referral_percentage,omitempty" db:"referral_percentage"`
	StripeAccountID    *string `json:"stripe_account_id,omitempty" db:"stripe_account_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ReferralPct returns the configured commission percentage, 0 when unset.
func (u *User) ReferralPct() int {
	if u.ReferralPercentage == nil {
		return 0
	}
	return *u.ReferralPercentage
}

// KlubSummary is the public clubs listing projection.
type KlubSummary struct {
	ID         uuid.UUID `json:"id" db:"id"`
	NazivKluba *string   `json:"naziv_kluba" db:"naziv_kluba"`
	Grad       *string   `json:"grad" db:"grad"`
	OIB        *string   `json:"oib" db:"oib"`
	LogoURL    *string   `json:"logo_url" db:"logo_url"`
}

// Member is the club-members listing projection.
type Member struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Email string    `json:"email" db:"email"`
}
