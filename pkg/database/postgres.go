package database

import (
	"fmt"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the service reads or writes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.Court{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Partial index backing the moderation queue (newest pending first)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_venues_pending
		ON venues (created_at DESC)
		WHERE approval_status = 'PENDING'
	`).Error; err != nil {
		return fmt.Errorf("create pending index: %w", err)
	}
	return nil
}
