package commands

import (
	"context"
	"fmt"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

// StartFlowCommandHandler fetches the directory, indexes it and stores a fresh flow at TypeSelect.
type StartFlowCommandHandler struct {
	directory ports.DirectoryService
	flows     ports.FlowRepository
	clock     Clock
}

func NewStartFlowCommandHandler(
	directory ports.DirectoryService,
	flows ports.FlowRepository,
	clock Clock,
) StartFlowCommandHandler {
	return StartFlowCommandHandler{
		directory: directory,
		flows:     flows,
		clock:     clock,
	}
}

// Handle builds the store -> department -> manager index once; pickers of this flow reuse it.
func (h StartFlowCommandHandler) Handle(ctx context.Context, cmd StartFlowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stores, err := h.directory.ListStores(ctx)
	if err != nil {
		return fmt.Errorf("failed to load store directory: %w", err)
	}

	index, err := directory.NewIndex(stores)
	if err != nil {
		return err
	}

	flow, err := wizard.NewFlow(cmd.FlowID(), index, h.clock())
	if err != nil {
		return err
	}

	return h.flows.Add(ctx, flow)
}
