package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "coachdesk_backend/internals/features/users/auth/repository"
)

// StartTokenCleanupScheduler prunes expired blacklist and refresh token
// rows hourly; rotation deletes used refresh tokens, this sweeps the rest.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[ERROR] blacklist cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d rows", n)
			}

			if n, err := authRepo.CleanupExpiredRefreshTokens(db); err != nil {
				log.Printf("[ERROR] refresh token cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("[INFO] refresh token cleanup removed %d rows", n)
			}
		}
	}()
}
