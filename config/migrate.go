package config

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	)
	if err != nil {
		return fmt.Errorf("migrate database schema: %w", err)
	}

	Log.Info("Database migrations completed successfully")
	return nil
}

// FreshDatabase reports whether the database has no accounts yet, which
// is the trigger for the one-time legacy workbook import.
func FreshDatabase(db *gorm.DB) bool {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}
