// Package flowrepo keeps wizard flows in process memory. Flows are session state
// and are not persisted across restarts.
package flowrepo

import (
	"context"
	"sync"
	"time"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/pkg/errs"
)

// InMemoryFlowRepository implements ports.FlowRepository. It stores and returns clones,
// so callers never share a *wizard.Flow with each other. Update is rejected when the
// stored flow was updated after the caller loaded it.
type InMemoryFlowRepository struct {
	mu    sync.RWMutex
	flows map[kernel.UUID]*wizard.Flow
}

func NewInMemoryFlowRepository() *InMemoryFlowRepository {
	return &InMemoryFlowRepository{
		flows: make(map[kernel.UUID]*wizard.Flow),
	}
}

func (r *InMemoryFlowRepository) Add(_ context.Context, flow *wizard.Flow) error {
	if err := flow.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.flows[flow.ID()]; exists {
		return errs.NewValueIsConflictingError("flowId", flow.ID().String())
	}
	r.flows[flow.ID()] = flow.Clone()
	return nil
}

func (r *InMemoryFlowRepository) Get(_ context.Context, id kernel.UUID) (*wizard.Flow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flow, ok := r.flows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("flow", id.String())
	}
	return flow.Clone(), nil
}

func (r *InMemoryFlowRepository) Update(_ context.Context, flow *wizard.Flow) error {
	if err := flow.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.flows[flow.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("flow", flow.ID().String())
	}
	if stored.Revision() != flow.Revision() {
		return errs.NewValueIsConflictingError("flowRevision", flow.Revision())
	}

	c := flow.Clone()
	c.NextRevision()
	r.flows[flow.ID()] = c
	return nil
}

func (r *InMemoryFlowRepository) RemoveIdle(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, flow := range r.flows {
		if flow.IdleSince(before) {
			delete(r.flows, id)
			removed++
		}
	}
	return removed, nil
}

// Len is the number of flows currently held.
func (r *InMemoryFlowRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}
