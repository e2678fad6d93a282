package relational

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the cemetery tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&plotholderModel{},
		&gravesiteModel{},
		&locationModel{},
		&contractModel{},
		&deceasedModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
