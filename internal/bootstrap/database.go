package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"adyenbridge/internal/models"
)

// Migrate ensures the payment table exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Payment{}); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
