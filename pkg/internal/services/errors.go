package services

import (
	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// ReportError persists a server side or explicitly flagged error for
// operational visibility. Best effort: runs off the request path and a
// failed write only ends up in the log stream.
func ReportError(statusCode int, message, details string, context map[string]any) {
	entry := models.ErrorLog{
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
		Context:    datatypes.JSONMap(context),
	}

	go func() {
		if err := database.C.Create(&entry).Error; err != nil {
			log.Warn().Err(err).Str("message", message).
				Msg("Unable to persist an error log entry...")
		}
	}()
}
