package user

import "time"

type User struct {
	ID           string    `gorm:"type:varchar(64);primaryKey" json:"user_id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Picture      *string   `gorm:"type:text" json:"picture,omitempty"`
	PasswordHash *string   `gorm:"type:varchar(255)" json:"-"`
	Role         string    `gorm:"type:varchar(16);not null;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// The guest identity is a single shared user record: every anonymous
// session collapses onto it, so guest progress is shared across all
// visitors. That sharing is a contract, not an accident.
const (
	GuestUserID = "user_guest_shared"
	GuestEmail  = "guest@examtrack.app"
	GuestName   = "Guest User"
)

// PasswordReset is a short-lived one-time code tied to an email.
type PasswordReset struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Token     string    `gorm:"type:varchar(16);not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
