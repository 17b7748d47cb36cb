package commands

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/guard"
)

var ErrStartFlowCommandIsNotConstructed = errors.New(
	"StartFlowCommand must be created via NewStartFlowCommand constructor",
)

// StartFlowCommand opens a new wizard session. The store directory is fetched once
// for the session and kept read-only until the flow is evicted.
//
// Example:
//
//	flowID := kernel.NewUUID()
//	cmd, err := NewStartFlowCommand(flowID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type StartFlowCommand struct { //nolint:recvcheck //using for validation
	flowID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartFlowCommand creates the command for the given flow identifier.
func NewStartFlowCommand(flowID kernel.UUID) (StartFlowCommand, error) {
	command := StartFlowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setFlowID(flowID); err != nil {
		return StartFlowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartFlowCommand) Validate() error {
	return c.guard.Validate(ErrStartFlowCommandIsNotConstructed)
}

func (c StartFlowCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c *StartFlowCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}
