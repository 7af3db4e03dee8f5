package stores

import (
	"errors"
	"time"

	"github.com/Jezzej/craftique/internals/models"

	"gorm.io/gorm"
)

// ResetTokenStore persists hashed password-reset tokens, one live token
// per user (unique index on user_id, same scheme as OtpStore).
type ResetTokenStore struct {
	DB *gorm.DB
}

func NewResetTokenStore(db *gorm.DB) *ResetTokenStore {
	return &ResetTokenStore{DB: db}
}

func (s *ResetTokenStore) DeleteAllForUser(userID uint) error {
	return s.DB.Unscoped().Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error
}

func (s *ResetTokenStore) Create(userID uint, hashedToken string, expiresAt time.Time) (*models.PasswordResetToken, error) {
	token := models.PasswordResetToken{
		UserID:      userID,
		HashedToken: hashedToken,
		ExpiresAt:   expiresAt,
	}
	if err := s.DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindForUser returns the user's live token, or nil when there is none.
func (s *ResetTokenStore) FindForUser(userID uint) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (s *ResetTokenStore) DeleteByID(id uint) error {
	return s.DB.Unscoped().Delete(&models.PasswordResetToken{}, id).Error
}
