package directory

import (
	"fmt"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/errs"
)

// Index is the read-only store directory of one wizard flow:
// storeID -> department -> managers, plus the stores in directory order.
type Index struct {
	stores []*Store
	byID   map[kernel.UUID]*Store
}

// NewIndex rejects nil entries and duplicate store ids.
func NewIndex(stores []*Store) (*Index, error) {
	idx := &Index{
		stores: make([]*Store, 0, len(stores)),
		byID:   make(map[kernel.UUID]*Store, len(stores)),
	}

	for _, s := range stores {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := idx.byID[s.ID()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("storeId", fmt.Errorf("%s is listed twice", s.ID()))
		}
		idx.byID[s.ID()] = s
		idx.stores = append(idx.stores, s)
	}

	return idx, nil
}

// Stores returns the stores in directory order.
func (i *Index) Stores() []*Store {
	return append([]*Store(nil), i.stores...)
}

func (i *Index) Len() int {
	return len(i.stores)
}

func (i *Index) Store(id kernel.UUID) (*Store, error) {
	s, ok := i.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("storeId", id.String())
	}
	return s, nil
}

// Managers returns the managers of one department of one store.
func (i *Index) Managers(storeID kernel.UUID, department string) ([]Manager, error) {
	s, err := i.Store(storeID)
	if err != nil {
		return nil, err
	}
	d, ok := s.Department(department)
	if !ok {
		return nil, errs.NewObjectNotFoundError("department", department)
	}
	return d.Managers(), nil
}
