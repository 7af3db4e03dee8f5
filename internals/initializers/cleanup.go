package initializers

import (
	"log"
	"time"

	"github.com/Jezzej/craftique/internals/config"
	"github.com/Jezzej/craftique/internals/models"
)

// StartExpiredRecordCleanup launches a janitor that purges expired OTP and
// reset-token rows. Expiry is still enforced at match time; the sweep only
// keeps the tables from growing indefinitely.
func StartExpiredRecordCleanup() {
	cleanupInterval := config.GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 30, true)
	ticker := time.NewTicker(time.Duration(cleanupInterval) * time.Minute)

	go func() {
		for range ticker.C {
			// Unscoped() performs a hard delete, bypassing gorm's soft
			// delete, so the unique index on user_id stays usable.
			otpResult := DB.Unscoped().Where("expires_at < ?", time.Now()).Delete(&models.Otp{})
			tokenResult := DB.Unscoped().Where("expires_at < ?", time.Now()).Delete(&models.PasswordResetToken{})

			if otpResult.RowsAffected > 0 || tokenResult.RowsAffected > 0 {
				log.Printf("Janitor: Cleaned %d expired OTPs and %d expired reset tokens",
					otpResult.RowsAffected, tokenResult.RowsAffected)
			}
		}
	}()
}
