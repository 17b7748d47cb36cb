package directoryrepo

import (
	"context"

	"storecourier/internal/core/domain/model/directory"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements ports.DirectoryService over the stores tables.
type GormDirectoryRepository struct {
	db *gorm.DB
}

func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

// ListStores returns every store ordered by name, managers grouped by department.
func (r *GormDirectoryRepository) ListStores(ctx context.Context) ([]*directory.Store, error) {
	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).
		Preload("Managers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	stores := make([]*directory.Store, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, nil
}

// Save inserts or replaces a store together with its managers.
func (r *GormDirectoryRepository) Save(ctx context.Context, store *directory.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}

	dto := fromDomain(store)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", dto.ID).Delete(&ManagerDTO{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto).Error
	})
}
