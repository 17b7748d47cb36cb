// Package directoryrepo reads the store directory: stores and their managers grouped by department.
package directoryrepo

import (
	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StoreDTO is one store row with its managers.
type StoreDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Code     string       `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name     string       `gorm:"type:varchar(255);not null"`
	Address  string       `gorm:"type:text;not null"`
	Managers []ManagerDTO `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

// ManagerDTO is a manager of one department. Position keeps the directory order,
// departments appear in the order of their first manager.
type ManagerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Department string    `gorm:"type:varchar(64);not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Phone      string    `gorm:"type:varchar(20);not null"`
	Position   int       `gorm:"type:int;not null"`
}

func (ManagerDTO) TableName() string {
	return "store_managers"
}

func fromDomain(store *directory.Store) StoreDTO {
	storeID := store.ID().Bytes()
	managers := make([]ManagerDTO, 0)

	position := 0
	for _, label := range store.DepartmentLabels() {
		dept, _ := store.Department(label)
		for _, m := range dept.Managers() {
			managers = append(managers, ManagerDTO{
				ID:         m.ID().Bytes(),
				StoreID:    storeID,
				Department: label,
				Name:       m.Name(),
				Phone:      m.Phone().Digits(),
				Position:   position,
			})
			position++
		}
	}

	return StoreDTO{
		ID:       storeID,
		Code:     store.Code(),
		Name:     store.Name(),
		Address:  store.Address(),
		Managers: managers,
	}
}

// toDomain expects Managers sorted by Position.
func toDomain(dto StoreDTO) (*directory.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0)
	byLabel := make(map[string][]directory.Manager)
	for _, mDto := range dto.Managers {
		m, mErr := managerToDomain(mDto)
		if mErr != nil {
			return nil, mErr
		}
		if _, seen := byLabel[mDto.Department]; !seen {
			labels = append(labels, mDto.Department)
		}
		byLabel[mDto.Department] = append(byLabel[mDto.Department], m)
	}

	departments := make([]directory.Department, 0, len(labels))
	for _, label := range labels {
		dept, dErr := directory.NewDepartment(label, byLabel[label])
		if dErr != nil {
			return nil, dErr
		}
		departments = append(departments, dept)
	}

	return directory.NewStore(id, dto.Code, dto.Name, dto.Address, departments)
}

func managerToDomain(dto ManagerDTO) (directory.Manager, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return directory.Manager{}, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return directory.Manager{}, err
	}

	return directory.NewManager(id, dto.Name, phone)
}
