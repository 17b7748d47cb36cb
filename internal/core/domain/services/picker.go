package services

import (
	"slices"
	"strings"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/pkg/errs"

	"github.com/agnivade/levenshtein"
)

// Side tells which end of the delivery a picker is choosing.
type Side int

const (
	UnknownSide Side = iota
	OriginSide
	DestinationSide
)

func (s Side) String() string {
	switch s {
	case OriginSide:
		return "origin"
	case DestinationSide:
		return "destination"
	default:
		return "unknown"
	}
}

// ParseSide maps "origin" or "destination".
func ParseSide(v string) (Side, error) {
	switch v {
	case "origin":
		return OriginSide, nil
	case "destination":
		return DestinationSide, nil
	default:
		return UnknownSide, errs.NewValueIsInvalidError("side")
	}
}

// StoreOption is one row of the store list. Selectable is false for the origin
// store when picking the destination.
type StoreOption struct {
	Store      *directory.Store
	Selectable bool
}

// StoreManagerPicker resolves the flat directory into store -> department -> manager.
// The same type serves both sides; only the destination picker carries an excluded store.
type StoreManagerPicker struct {
	index    *directory.Index
	side     Side
	excluded *kernel.UUID
}

func NewOriginPicker(index *directory.Index) StoreManagerPicker {
	return StoreManagerPicker{index: index, side: OriginSide}
}

// NewDestinationPicker excludes the origin selection's store.
func NewDestinationPicker(index *directory.Index, origin wizard.Selection) StoreManagerPicker {
	p := StoreManagerPicker{index: index, side: DestinationSide}
	if origin.Validate() == nil {
		id := origin.Store().ID()
		p.excluded = &id
	}
	return p
}

// NewPickerFor builds the picker for side from the current wizard state.
func NewPickerFor(index *directory.Index, side Side, state wizard.State) (StoreManagerPicker, error) {
	switch side {
	case OriginSide:
		return NewOriginPicker(index), nil
	case DestinationSide:
		origin, ok := state.Origin()
		if !ok {
			return StoreManagerPicker{}, errs.NewValueIsRequiredError("originSelection")
		}
		return NewDestinationPicker(index, origin), nil
	default:
		return StoreManagerPicker{}, errs.NewValueIsInvalidError("side")
	}
}

func (p StoreManagerPicker) Side() Side {
	return p.side
}

// Stores lists every store in directory order.
func (p StoreManagerPicker) Stores() []StoreOption {
	stores := p.index.Stores()
	options := make([]StoreOption, len(stores))
	for i, s := range stores {
		options[i] = p.option(s)
	}
	return options
}

// Search keeps stores whose name, code, address or any manager name contains query,
// ignoring case. Matches are ordered by how close the store name is to the query;
// equal distances keep directory order. An empty query lists every store.
func (p StoreManagerPicker) Search(query string) []StoreOption {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return p.Stores()
	}

	type ranked struct {
		option   StoreOption
		distance int
	}
	var matches []ranked
	for _, s := range p.index.Stores() {
		if !matchesStore(s, q) {
			continue
		}
		matches = append(matches, ranked{
			option:   p.option(s),
			distance: levenshtein.ComputeDistance(q, strings.ToLower(s.Name())),
		})
	}

	slices.SortStableFunc(matches, func(a, b ranked) int {
		return a.distance - b.distance
	})

	options := make([]StoreOption, len(matches))
	for i, m := range matches {
		options[i] = m.option
	}
	return options
}

// SelectStore opens the department stage. Picking the excluded store fails with
// wizard.SameStoreConflictError instead of being ignored.
func (p StoreManagerPicker) SelectStore(storeID kernel.UUID) (StorePick, error) {
	store, err := p.index.Store(storeID)
	if err != nil {
		return StorePick{}, err
	}
	if p.isExcluded(store) {
		return StorePick{}, wizard.NewSameStoreConflictError(store.ID(), store.Name())
	}
	return StorePick{store: store}, nil
}

// Resolve runs the three stages in one call.
func (p StoreManagerPicker) Resolve(storeID kernel.UUID, department string, managerID kernel.UUID) (wizard.Selection, error) {
	storePick, err := p.SelectStore(storeID)
	if err != nil {
		return wizard.Selection{}, err
	}
	deptPick, err := storePick.SelectDepartment(department)
	if err != nil {
		return wizard.Selection{}, err
	}
	return deptPick.SelectManager(managerID)
}

func (p StoreManagerPicker) option(s *directory.Store) StoreOption {
	return StoreOption{Store: s, Selectable: !p.isExcluded(s)}
}

func (p StoreManagerPicker) isExcluded(s *directory.Store) bool {
	return p.excluded != nil && s.ID().IsEqual(*p.excluded)
}

func matchesStore(s *directory.Store, q string) bool {
	for _, field := range []string{s.Name(), s.Code(), s.Address()} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, m := range s.Managers() {
		if strings.Contains(strings.ToLower(m.Name()), q) {
			return true
		}
	}
	return false
}

// StorePick is a chosen store waiting for a department.
type StorePick struct {
	store *directory.Store
}

func (sp StorePick) Store() *directory.Store {
	return sp.store
}

func (sp StorePick) Departments() []string {
	return sp.store.DepartmentLabels()
}

func (sp StorePick) SelectDepartment(label string) (DepartmentPick, error) {
	dept, ok := sp.store.Department(label)
	if !ok {
		return DepartmentPick{}, errs.NewObjectNotFoundError("department", label)
	}
	return DepartmentPick{store: sp.store, department: dept}, nil
}

// DepartmentPick is a chosen department waiting for a manager.
type DepartmentPick struct {
	store      *directory.Store
	department directory.Department
}

func (dp DepartmentPick) Managers() []directory.Manager {
	return dp.department.Managers()
}

// SelectManager finalizes the Selection.
func (dp DepartmentPick) SelectManager(managerID kernel.UUID) (wizard.Selection, error) {
	for _, m := range dp.department.Managers() {
		if m.ID().IsEqual(managerID) {
			return wizard.NewSelection(dp.store, dp.department.Label(), m)
		}
	}
	return wizard.Selection{}, errs.NewObjectNotFoundError("managerId", managerID.String())
}
