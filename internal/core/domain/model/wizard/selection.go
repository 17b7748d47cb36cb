package wizard

import (
	"errors"
	"fmt"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

var ErrSelectionIsNotConstructed = errors.New("Selection must be created via NewSelection constructor")

// Selection is a resolved (store, department, manager) triple for one side of a delivery.
// DisplayName is derived and cannot be edited.
type Selection struct { //nolint:recvcheck //using for validation
	store      *directory.Store
	department string
	manager    directory.Manager
	guard      guard.ConstructorGuard
}

// NewSelection checks that the department belongs to the store and the manager to the department.
func NewSelection(store *directory.Store, department string, manager directory.Manager) (Selection, error) {
	if err := store.Validate(); err != nil {
		return Selection{}, err
	}
	if err := manager.Validate(); err != nil {
		return Selection{}, err
	}

	dept, ok := store.Department(department)
	if !ok {
		return Selection{}, errs.NewObjectNotFoundErrorWithCause(
			"department", department, fmt.Errorf("store %s has no such department", store.Name()))
	}

	for _, m := range dept.Managers() {
		if m.ID().IsEqual(manager.ID()) {
			return Selection{
				store:      store,
				department: department,
				manager:    m,
				guard:      guard.NewConstructorGuard(),
			}, nil
		}
	}

	return Selection{}, errs.NewObjectNotFoundErrorWithCause(
		"managerId", manager.ID().String(), fmt.Errorf("not a manager of %s %s", store.Name(), department))
}

func (s Selection) Validate() error {
	return s.guard.Validate(ErrSelectionIsNotConstructed)
}

func (s Selection) Store() *directory.Store {
	return s.store
}

func (s Selection) Department() string {
	return s.department
}

func (s Selection) Manager() directory.Manager {
	return s.manager
}

// DisplayName renders "{storeName} {department} - {managerName}".
func (s Selection) DisplayName() string {
	return fmt.Sprintf("%s %s - %s", s.store.Name(), s.department, s.manager.Name())
}

// SameStore reports whether both selections point at the same store.
func (s Selection) SameStore(other Selection) bool {
	return s.store != nil && other.store != nil && s.store.ID().IsEqual(other.store.ID())
}
