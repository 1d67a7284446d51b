package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates all tables. Safe to run on every start.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// accounts
		&User{},

		// master data
		&Warehouse{},
		&Worker{},
		&Material{},

		// batch -> distribution -> production flow
		&Batch{},
		&Distribution{},
		&Production{},

		// ledgers
		&Payment{},
		&InventoryMovement{},
	)
}
