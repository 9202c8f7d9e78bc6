package logger

import (
	"log"
	log_model "movieflix/models/log"
	"movieflix/types"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// AsyncLogger persists request audit entries off the hot path through a
// buffered channel.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel into the logs table. Run it on its own
// goroutine.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous audit logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:          logEntry.Method,
			URL:             logEntry.URL,
			ClientIP:        logEntry.ClientIP,
			RequestBody:     logEntry.RequestBody,
			ResponseBody:    logEntry.ResponseBody,
			RequestHeaders:  logEntry.RequestHeaders,
			ResponseHeaders: logEntry.ResponseHeaders,
			StatusCode:      logEntry.StatusCode,
			CreatedAt:       logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert audit log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.channel <- entry
}

// PurgeOlderThan deletes audit rows created before the retention
// cutoff, measured in whole days from the start of today.
func (logger *AsyncLogger) PurgeOlderThan(retentionDays int) (int64, error) {
	cutoff := now.With(time.Now()).BeginningOfDay().AddDate(0, 0, -retentionDays)
	res := logger.db.Where("created_at < ?", cutoff).Delete(&log_model.Log{})
	return res.RowsAffected, res.Error
}
