package directory

import (
	"errors"
	"fmt"
	"strings"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/errs"
)

var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Department groups the managers of one store section, e.g. "여성" or "남성".
type Department struct {
	label    string
	managers []Manager
}

// NewDepartment keeps managers in the given order. A department without managers is rejected
// because nothing could be picked from it.
func NewDepartment(label string, managers []Manager) (Department, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Department{}, errs.NewValueIsRequiredError("department")
	}
	if len(managers) == 0 {
		return Department{}, errs.NewValueIsRequiredErrorWithCause("managers", fmt.Errorf("department %s has none", label))
	}
	for _, m := range managers {
		if err := m.Validate(); err != nil {
			return Department{}, err
		}
	}
	return Department{label: label, managers: append([]Manager(nil), managers...)}, nil
}

func (d Department) Label() string {
	return d.label
}

func (d Department) Managers() []Manager {
	return append([]Manager(nil), d.managers...)
}

// Store is one entry of the store directory.
//
// Invariants:
//   - id, code and name are set
//   - department labels are unique within the store
type Store struct {
	id          kernel.UUID
	code        string
	name        string
	address     string
	departments []Department
	byLabel     map[string]int

	isConstructed bool
}

func NewStore(id kernel.UUID, code, name, address string, departments []Department) (*Store, error) {
	s := &Store{
		code:          strings.TrimSpace(code),
		name:          strings.TrimSpace(name),
		address:       strings.TrimSpace(address),
		byLabel:       make(map[string]int, len(departments)),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.requireText("storeCode", s.code),
		s.requireText("storeName", s.name),
		s.setDepartments(departments),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

func (s *Store) Code() string {
	return s.code
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Address() string {
	return s.address
}

// DepartmentLabels returns the labels in directory order.
func (s *Store) DepartmentLabels() []string {
	labels := make([]string, len(s.departments))
	for i, d := range s.departments {
		labels[i] = d.label
	}
	return labels
}

// Department looks a department up by its label.
func (s *Store) Department(label string) (Department, bool) {
	i, ok := s.byLabel[label]
	if !ok {
		return Department{}, false
	}
	return s.departments[i], true
}

// Managers returns every manager of the store, department by department.
func (s *Store) Managers() []Manager {
	var all []Manager
	for _, d := range s.departments {
		all = append(all, d.managers...)
	}
	return all
}

func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func (s *Store) setDepartments(departments []Department) error {
	for _, d := range departments {
		if d.label == "" {
			return errs.NewValueIsRequiredError("department")
		}
		if _, dup := s.byLabel[d.label]; dup {
			return errs.NewValueIsInvalidErrorWithCause("department", fmt.Errorf("%s is listed twice", d.label))
		}
		s.byLabel[d.label] = len(s.departments)
		s.departments = append(s.departments, d)
	}
	return nil
}
