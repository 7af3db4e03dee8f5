package stores

import (
	"errors"

	"github.com/Jezzej/craftique/internals/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by id-based lookups that miss.
var ErrNotFound = errors.New("record not found")

// UserStore persists user records. Callers supply already-hashed
// passwords; the store never hashes anything itself.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// FindByEmail returns nil (not an error) when no user has the email, so
// existence checks don't have to untangle error values.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Create(user *models.User) error {
	return s.DB.Create(user).Error
}

// UpdatePassword overwrites the stored hash. newHash must already be hashed.
func (s *UserStore) UpdatePassword(id uint, newHash string) error {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("password", newHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkVerified flips the verified flag and returns the updated record.
func (s *UserStore) MarkVerified(id uint) (*models.User, error) {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_verified", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

// UpdateProfile applies name/email changes and returns the updated record.
// The password column is not reachable through this method.
func (s *UserStore) UpdateProfile(id uint, updates map[string]interface{}) (*models.User, error) {
	delete(updates, "password")

	result := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}
