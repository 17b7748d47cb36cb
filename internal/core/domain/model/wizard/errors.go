package wizard

import (
	"errors"
	"fmt"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/errs"
)

var (
	ErrTransitionRejected = errors.New("wizard transition rejected")
	ErrSameStoreConflict  = errors.New("destination store must differ from origin store")
)

// SameStoreConflictError is raised when the destination store equals the origin store.
// It matches both ErrSameStoreConflict and errs.ErrValueIsConflicting.
type SameStoreConflictError struct {
	StoreID   kernel.UUID
	StoreName string
}

func NewSameStoreConflictError(storeID kernel.UUID, storeName string) *SameStoreConflictError {
	return &SameStoreConflictError{StoreID: storeID, StoreName: storeName}
}

func (e *SameStoreConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSameStoreConflict, e.StoreName)
}

func (e *SameStoreConflictError) Unwrap() []error {
	return []error{ErrSameStoreConflict, errs.ErrValueIsConflicting}
}
