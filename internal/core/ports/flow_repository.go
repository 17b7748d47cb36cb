package ports

import (
	"context"
	"time"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
)

// FlowRepository keeps the wizard flows of active sessions.
type FlowRepository interface {
	// Add stores a new flow.
	Add(ctx context.Context, flow *wizard.Flow) error

	// Get returns a copy of the flow, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*wizard.Flow, error)

	// Update replaces a stored flow. It returns errs.ValueIsConflictingError when the flow
	// was stored by someone else after it was loaded.
	Update(ctx context.Context, flow *wizard.Flow) error

	// RemoveIdle drops every flow not touched since before and returns how many were removed.
	RemoveIdle(ctx context.Context, before time.Time) (int, error)
}
