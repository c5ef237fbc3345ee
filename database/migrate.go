package database

import (
	"gorm.io/gorm"

	"riskscreen_backend/internal/models"
)

// Migrate brings the schema up to date. AutoMigrate is additive: it creates
// missing tables, columns and indexes but never drops anything.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
	)
}
