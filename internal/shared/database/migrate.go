package database

import (
	"seatwise/internal/layouts"
	"seatwise/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&layouts.Layout{},
	)
}
