package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds constraints AutoMigrate cannot express.
func MigrateConstraints(db *gorm.DB) error {
	// Dedupe pending event submissions on the client idempotency key.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_pending_events_idempotency_key
		ON pending_events (idempotency_key);
	`).Error
	if err != nil {
		return err
	}

	// Review queue is always filtered by status.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_pending_events_status
		ON pending_events (status);
	`).Error
	if err != nil {
		return err
	}

	// One room number per location.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_location_number
		ON rooms (location_id, number);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
