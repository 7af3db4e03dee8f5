package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name       string `gorm:"column:name"`
	Email      string `gorm:"column:email;uniqueIndex"`
	Password   string `gorm:"column:password"` // bcrypt hash, never plaintext
	IsVerified bool   `gorm:"column:is_verified;default:false"`
	IsAdmin    bool   `gorm:"column:is_admin;default:false"`
}

// SanitizedUser is the projection of User that is safe to return to a
// caller: the password hash and gorm bookkeeping fields are stripped.
type SanitizedUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
	IsAdmin    bool   `json:"isAdmin"`
}

// Sanitize strips secret and internal fields from the record.
func (u *User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		IsAdmin:    u.IsAdmin,
	}
}
