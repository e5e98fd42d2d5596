package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a club-hosted event. Datum and Vrijeme are free-form
// strings; nothing beyond presence is enforced.
type Activity struct {
	ID        uuid.UUID `json:"id" db:"id"`
	KlubID    uuid.UUID `json:"klub_id" db:"klub_id"`
	Naziv     string    `json:"naziv" db:"naziv"`
	Opis      string    `json:"opis" db:"opis"`
	Lokacija  string    `json:"lokacija" db:"lokacija"`
	Datum     string    `json:"datum" db:"datum"`
	Vrijeme   string    `json:"vrijeme" db:"vrijeme"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ActivityWithKlub carries the owning club's display name for the public
// calendar listing.
type ActivityWithKlub struct {
	Activity
	KlubNaziv *string `json:"-" db:"klub_naziv"`
}
