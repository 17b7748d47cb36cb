package queries

import (
	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
)

// SelectionView is one resolved side of a delivery.
type SelectionView struct {
	StoreID      kernel.UUID
	StoreName    string
	Department   string
	ManagerID    kernel.UUID
	ManagerName  string
	ManagerPhone string
	DisplayName  string
}

func selectionView(s wizard.Selection) *SelectionView {
	return &SelectionView{
		StoreID:      s.Store().ID(),
		StoreName:    s.Store().Name(),
		Department:   s.Department(),
		ManagerID:    s.Manager().ID(),
		ManagerName:  s.Manager().Name(),
		ManagerPhone: s.Manager().Phone().Display(),
		DisplayName:  s.DisplayName(),
	}
}

// StoreView is one row of a store list.
type StoreView struct {
	ID          kernel.UUID
	Code        string
	Name        string
	Address     string
	Departments []string
	Selectable  bool
}

// ManagerView is one manager of a department.
type ManagerView struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	PhoneDisplay string
}

func managerView(m directory.Manager) ManagerView {
	return ManagerView{
		ID:           m.ID(),
		Name:         m.Name(),
		Phone:        m.Phone().Digits(),
		PhoneDisplay: m.Phone().Display(),
	}
}
