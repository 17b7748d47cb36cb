package commands

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/guard"
)

var ErrRestartFlowCommandIsNotConstructed = errors.New(
	"RestartFlowCommand must be created via NewRestartFlowCommand constructor",
)

// RestartFlowCommand discards everything collected and returns to TypeSelect.
// The directory loaded at flow start is kept.
type RestartFlowCommand struct { //nolint:recvcheck //using for validation
	flowID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRestartFlowCommand(flowID kernel.UUID) (RestartFlowCommand, error) {
	command := RestartFlowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setFlowID(flowID); err != nil {
		return RestartFlowCommand{}, err
	}

	return command, nil
}

func (c RestartFlowCommand) Validate() error {
	return c.guard.Validate(ErrRestartFlowCommandIsNotConstructed)
}

func (c RestartFlowCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c *RestartFlowCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}
