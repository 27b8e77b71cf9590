package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
	"gorm.io/gorm"
)

// PurgeBefore deletes system_logs recorded before cutoff.
func PurgeBefore(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).Where("timestamp < ?", cutoff.UTC()).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup purges system_logs older than retentionDays once a day
// until done is closed.
func StartCleanup(db *gorm.DB, retentionDays int, done <-chan struct{}) {
	if retentionDays <= 0 {
		retentionDays = 30
	}

	purge := func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		deleted, err := PurgeBefore(context.Background(), db, cutoff)
		if err != nil {
			slog.Error("log cleanup failed", "action", "log_cleanup", "error", err)
		} else if deleted > 0 {
			slog.Info("log cleanup completed", "deleted", deleted)
		}
	}

	go func() {
		purge()
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				purge()
			case <-done:
				return
			}
		}
	}()
}
