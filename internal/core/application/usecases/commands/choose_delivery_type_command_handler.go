package commands

import (
	"context"

	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

// ChooseDeliveryTypeCommandHandler stores the delivery type and moves the flow to OriginSelect.
type ChooseDeliveryTypeCommandHandler struct {
	flows ports.FlowRepository
	clock Clock
}

func NewChooseDeliveryTypeCommandHandler(flows ports.FlowRepository, clock Clock) ChooseDeliveryTypeCommandHandler {
	return ChooseDeliveryTypeCommandHandler{flows: flows, clock: clock}
}

func (h ChooseDeliveryTypeCommandHandler) Handle(ctx context.Context, cmd ChooseDeliveryTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateFlow(ctx, h.flows, cmd.FlowID(), func(flow *wizard.Flow) error {
		return flow.SetDeliveryType(cmd.DeliveryType(), h.clock())
	})
}
