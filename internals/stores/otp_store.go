package stores

import (
	"errors"
	"time"

	"github.com/Jezzej/craftique/internals/models"

	"gorm.io/gorm"
)

// OtpStore persists hashed verification codes. The table carries a unique
// index on user_id, so after DeleteAllForUser + Create at most one live
// code exists per user even if two requests race.
type OtpStore struct {
	DB *gorm.DB
}

func NewOtpStore(db *gorm.DB) *OtpStore {
	return &OtpStore{DB: db}
}

// DeleteAllForUser hard-deletes every code owned by the user. Deleting
// when none exist is not an error. Unscoped() avoids gorm soft-delete
// tombstones, which would collide with the unique index on re-insert.
func (s *OtpStore) DeleteAllForUser(userID uint) error {
	return s.DB.Unscoped().Where("user_id = ?", userID).Delete(&models.Otp{}).Error
}

func (s *OtpStore) Create(userID uint, hashedCode string, expiresAt time.Time) (*models.Otp, error) {
	otp := models.Otp{
		UserID:     userID,
		HashedCode: hashedCode,
		ExpiresAt:  expiresAt,
	}
	if err := s.DB.Create(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

// FindForUser returns the user's live code, or nil when there is none.
func (s *OtpStore) FindForUser(userID uint) (*models.Otp, error) {
	var otp models.Otp
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (s *OtpStore) DeleteByID(id uint) error {
	return s.DB.Unscoped().Delete(&models.Otp{}, id).Error
}
