package scheduler

import (
	"log"
	"time"

	authRepo "tpims_backend/internals/features/users/auth/repository"

	"gorm.io/gorm"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows once a
// day so the table stays small.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Purging expired token_blacklist rows...")
			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Failed to purge blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d expired tokens removed", n)
			} else {
				log.Println("[CLEANUP] Nothing to remove")
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
