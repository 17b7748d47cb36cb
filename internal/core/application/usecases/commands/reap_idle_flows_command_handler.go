package commands

import (
	"context"

	"storecourier/internal/core/ports"
)

type ReapIdleFlowsCommandHandler struct {
	flows ports.FlowRepository
	clock Clock
}

func NewReapIdleFlowsCommandHandler(flows ports.FlowRepository, clock Clock) ReapIdleFlowsCommandHandler {
	return ReapIdleFlowsCommandHandler{flows: flows, clock: clock}
}

// Handle returns the number of flows removed.
func (h ReapIdleFlowsCommandHandler) Handle(ctx context.Context, cmd ReapIdleFlowsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.flows.RemoveIdle(ctx, h.clock().Add(-cmd.IdleTTL()))
}
