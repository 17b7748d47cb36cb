package postgres

import (
	"storecourier/internal/adapters/out/postgres/directoryrepo"
	"storecourier/internal/adapters/out/postgres/requestrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the stores, store_managers and submitted_requests tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&directoryrepo.StoreDTO{},
		&directoryrepo.ManagerDTO{},
		&requestrepo.SubmittedRequestDTO{},
	)
}
