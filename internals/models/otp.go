package models

import (
	"time"

	"gorm.io/gorm"
)

// Otp is a single outstanding email-verification challenge. The unique
// index on UserID guarantees at most one live code per user, so two
// concurrent resend requests cannot leave two matchable codes behind.
type Otp struct {
	gorm.Model
	UserID     uint      `gorm:"column:user_id;uniqueIndex"`
	HashedCode string    `gorm:"column:hashed_code"` // bcrypt hash, the cleartext only travels by email
	ExpiresAt  time.Time `gorm:"column:expires_at;index"`
}
