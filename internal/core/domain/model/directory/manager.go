package directory

import (
	"errors"
	"strings"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

var ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager constructor")

// Manager is a contact person inside a store department.
type Manager struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	name  string
	phone kernel.Phone
	guard guard.ConstructorGuard
}

func NewManager(id kernel.UUID, name string, phone kernel.Phone) (Manager, error) {
	m := Manager{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPhone(phone),
	); err != nil {
		return Manager{}, err
	}

	return m, nil
}

func (m Manager) Validate() error {
	return m.guard.Validate(ErrManagerIsNotConstructed)
}

func (m Manager) ID() kernel.UUID {
	return m.id
}

func (m Manager) Name() string {
	return m.name
}

func (m Manager) Phone() kernel.Phone {
	return m.phone
}

func (m *Manager) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manager) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("managerName")
	}
	m.name = name
	return nil
}

func (m *Manager) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	m.phone = phone
	return nil
}
