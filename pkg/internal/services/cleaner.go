package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup prunes stale error log rows and sweeps image files
// that lost their upload row. Scheduled hourly from main.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	if tx := database.C.Unscoped().
		Where("created_at < ?", deadline).
		Delete(&models.ErrorLog{}); tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up error logs...")
	} else {
		count += tx.RowsAffected
	}

	count += sweepOrphanImageFiles()

	log.Debug().Int64("affected", count).Msg("Database cleaned up.")
}

func sweepOrphanImageFiles() int64 {
	entries, err := os.ReadDir(BlogImageDirectory())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Msg("An error occurred when reading the image directory...")
		}
		return 0
	}

	var swept int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var count int64
		if err := database.C.Unscoped().Model(&models.Upload{}).
			Where("name = ?", entry.Name()).
			Count(&count).Error; err != nil || count > 0 {
			continue
		}

		if err := os.Remove(filepath.Join(BlogImageDirectory(), entry.Name())); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).
				Msg("Unable to sweep an orphan image file...")
		} else {
			swept++
		}
	}

	return swept
}
