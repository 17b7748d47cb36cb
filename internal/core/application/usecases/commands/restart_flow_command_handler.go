package commands

import (
	"context"

	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

type RestartFlowCommandHandler struct {
	flows ports.FlowRepository
	clock Clock
}

func NewRestartFlowCommandHandler(flows ports.FlowRepository, clock Clock) RestartFlowCommandHandler {
	return RestartFlowCommandHandler{flows: flows, clock: clock}
}

func (h RestartFlowCommandHandler) Handle(ctx context.Context, cmd RestartFlowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateFlow(ctx, h.flows, cmd.FlowID(), func(flow *wizard.Flow) error {
		flow.Restart(h.clock())
		return nil
	})
}
