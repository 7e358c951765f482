package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes AutoMigrate does not cover
func MigrateConstraints(db *gorm.DB) error {
	// uuid_generate_v4 used by the id defaults
	err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
	if err != nil {
		return err
	}

	// GIN index so section/seat lookups inside the jsonb document stay fast
	// for large arena layouts
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_layouts_sections
		ON layouts USING GIN (sections);
	`).Error
	if err != nil {
		return err
	}

	// Listing layouts per venue is the hottest read path
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_layouts_venue_updated
		ON layouts (venue_id, updated_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
