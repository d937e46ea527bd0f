package session

import "time"

// Session is an opaque server-side grant. The token is the lookup key;
// expiry is enforced lazily on resolve, there is no background sweep.
type Session struct {
	Token     string    `gorm:"type:varchar(64);primaryKey" json:"-"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Session lifetimes. Guest and OAuth sessions are deliberately shorter:
// the shared guest identity keeps a smaller blast radius, and OAuth users
// can always re-consent.
const (
	TTLRegistered = 30 * 24 * time.Hour
	TTLGuest      = 7 * 24 * time.Hour
	TTLOAuth      = 7 * 24 * time.Hour
)
