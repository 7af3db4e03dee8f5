package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken is a single outstanding password-reset grant.
// Same one-live-record-per-user rule as Otp, enforced by the unique index.
type PasswordResetToken struct {
	gorm.Model
	UserID      uint      `gorm:"column:user_id;uniqueIndex"`
	HashedToken string    `gorm:"column:hashed_token"`
	ExpiresAt   time.Time `gorm:"column:expires_at;index"`
}
