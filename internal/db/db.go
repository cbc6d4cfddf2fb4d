package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mergington/activities/internal/models"
)

const dsnParams = "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

// Open connects to the sqlite file at path and migrates the schema.
func Open(path string, dbLogLevel string, log logrus.FieldLogger) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path+dsnParams), &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(dbLogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	// This also serializes the signup transactions.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	log.WithField("path", path).Info("database ready (sqlite)")
	return conn, nil
}

// Migrate creates the activities and participants tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.Activity{}, &models.Participant{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	// Listing orders participants by id within an activity.
	if err := conn.Exec("CREATE INDEX IF NOT EXISTS idx_participant_activity_id ON participants(activity_id, id)").Error; err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
