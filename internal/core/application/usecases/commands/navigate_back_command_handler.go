package commands

import (
	"context"

	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

// NavigateBackCommandHandler applies SetStep. Targets that are not strictly earlier are rejected.
type NavigateBackCommandHandler struct {
	flows ports.FlowRepository
	clock Clock
}

func NewNavigateBackCommandHandler(flows ports.FlowRepository, clock Clock) NavigateBackCommandHandler {
	return NavigateBackCommandHandler{flows: flows, clock: clock}
}

func (h NavigateBackCommandHandler) Handle(ctx context.Context, cmd NavigateBackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateFlow(ctx, h.flows, cmd.FlowID(), func(flow *wizard.Flow) error {
		return flow.SetStep(cmd.Step(), h.clock())
	})
}
