// Package ports defines the contracts between the pickup-request core and its collaborators:
// the store directory, the geocoder, the courier API, the address cache and persistence.
package ports

import (
	"context"

	"storecourier/internal/core/domain/model/directory"
)

// DirectoryService returns the store directory with managers already grouped by department.
// It is called once when a wizard flow starts.
type DirectoryService interface {
	ListStores(ctx context.Context) ([]*directory.Store, error)
}
