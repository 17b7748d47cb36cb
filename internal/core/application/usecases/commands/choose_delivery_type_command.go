package commands

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/pkg/guard"
)

var ErrChooseDeliveryTypeCommandIsNotConstructed = errors.New(
	"ChooseDeliveryTypeCommand must be created via NewChooseDeliveryTypeCommand constructor",
)

// ChooseDeliveryTypeCommand completes the first wizard page.
//
// Example:
//
//	cmd, err := NewChooseDeliveryTypeCommand(flowID, "매장 ↔ 매장")
type ChooseDeliveryTypeCommand struct { //nolint:recvcheck //using for validation
	flowID       kernel.UUID
	deliveryType wizard.DeliveryType

	guard guard.ConstructorGuard
}

// NewChooseDeliveryTypeCommand parses the delivery type label.
func NewChooseDeliveryTypeCommand(flowID kernel.UUID, deliveryTypeLabel string) (ChooseDeliveryTypeCommand, error) {
	command := ChooseDeliveryTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFlowID(flowID),
		command.setDeliveryType(deliveryTypeLabel),
	); err != nil {
		return ChooseDeliveryTypeCommand{}, err
	}

	return command, nil
}

func (c ChooseDeliveryTypeCommand) Validate() error {
	return c.guard.Validate(ErrChooseDeliveryTypeCommandIsNotConstructed)
}

func (c ChooseDeliveryTypeCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c ChooseDeliveryTypeCommand) DeliveryType() wizard.DeliveryType {
	return c.deliveryType
}

func (c *ChooseDeliveryTypeCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}

func (c *ChooseDeliveryTypeCommand) setDeliveryType(label string) error {
	t, err := wizard.ParseDeliveryType(label)
	if err != nil {
		return err
	}

	c.deliveryType = t
	return nil
}
