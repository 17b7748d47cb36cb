package commands

import (
	"context"

	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/core/ports"
)

// SelectStoreCommandHandler resolves the pick against the flow's directory and stores it.
// Origin moves OriginSelect -> DestinationSelect, destination moves DestinationSelect -> DetailsEntry.
type SelectStoreCommandHandler struct {
	flows ports.FlowRepository
	clock Clock
}

func NewSelectStoreCommandHandler(flows ports.FlowRepository, clock Clock) SelectStoreCommandHandler {
	return SelectStoreCommandHandler{flows: flows, clock: clock}
}

func (h SelectStoreCommandHandler) Handle(ctx context.Context, cmd SelectStoreCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateFlow(ctx, h.flows, cmd.FlowID(), func(flow *wizard.Flow) error {
		picker, err := services.NewPickerFor(flow.Directory(), cmd.Side(), flow.State())
		if err != nil {
			return err
		}

		selection, err := picker.Resolve(cmd.StoreID(), cmd.Department(), cmd.ManagerID())
		if err != nil {
			return err
		}

		if cmd.Side() == services.OriginSide {
			return flow.SetOriginStore(selection, h.clock())
		}
		return flow.SetDestinationStore(selection, h.clock())
	})
}
