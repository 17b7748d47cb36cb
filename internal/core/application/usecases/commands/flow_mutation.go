package commands

import (
	"context"
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
	"storecourier/internal/pkg/errs"
)

const mutateFlowAttempts = 3

// mutateFlow loads a flow, applies fn and stores the result. Nothing is stored when fn fails.
// When another command stored the flow in between, fn is applied again to the fresh copy.
func mutateFlow(
	ctx context.Context,
	flows ports.FlowRepository,
	flowID kernel.UUID,
	fn func(flow *wizard.Flow) error,
) error {
	var err error
	for range mutateFlowAttempts {
		var flow *wizard.Flow
		flow, err = flows.Get(ctx, flowID)
		if err != nil {
			return err
		}

		if err = fn(flow); err != nil {
			return err
		}

		err = flows.Update(ctx, flow)
		if !errors.Is(err, errs.ErrValueIsConflicting) {
			return err
		}
	}
	return err
}
