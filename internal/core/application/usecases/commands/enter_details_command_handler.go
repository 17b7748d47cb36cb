package commands

import (
	"context"

	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

// EnterDetailsCommandHandler replaces the shipment details of a flow at DetailsEntry.
type EnterDetailsCommandHandler struct {
	flows ports.FlowRepository
	clock Clock
}

func NewEnterDetailsCommandHandler(flows ports.FlowRepository, clock Clock) EnterDetailsCommandHandler {
	return EnterDetailsCommandHandler{flows: flows, clock: clock}
}

func (h EnterDetailsCommandHandler) Handle(ctx context.Context, cmd EnterDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateFlow(ctx, h.flows, cmd.FlowID(), func(flow *wizard.Flow) error {
		return flow.SetDetails(cmd.Details(), h.clock())
	})
}
