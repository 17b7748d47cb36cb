package commands

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/pkg/guard"
)

var ErrNavigateBackCommandIsNotConstructed = errors.New(
	"NavigateBackCommand must be created via NewNavigateBackCommand constructor",
)

// NavigateBackCommand returns the wizard to an earlier page. Collected values are kept.
type NavigateBackCommand struct { //nolint:recvcheck //using for validation
	flowID kernel.UUID
	step   wizard.Step

	guard guard.ConstructorGuard
}

func NewNavigateBackCommand(flowID kernel.UUID, step wizard.Step) (NavigateBackCommand, error) {
	command := NavigateBackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFlowID(flowID),
		command.setStep(step),
	); err != nil {
		return NavigateBackCommand{}, err
	}

	return command, nil
}

func (c NavigateBackCommand) Validate() error {
	return c.guard.Validate(ErrNavigateBackCommandIsNotConstructed)
}

func (c NavigateBackCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c NavigateBackCommand) Step() wizard.Step {
	return c.step
}

func (c *NavigateBackCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}

func (c *NavigateBackCommand) setStep(step wizard.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	c.step = step
	return nil
}
