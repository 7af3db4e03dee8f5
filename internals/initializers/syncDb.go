package initializers

import (
	"github.com/Jezzej/craftique/internals/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Otp{},
		&models.PasswordResetToken{},
	)
	if err != nil {
		panic("Failed to migrate database")
	}
}
