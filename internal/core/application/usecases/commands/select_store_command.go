package commands

import (
	"errors"
	"strings"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

var ErrSelectStoreCommandIsNotConstructed = errors.New(
	"SelectStoreCommand must be created via NewSelectStoreCommand constructor",
)

// SelectStoreCommand finalizes a store -> department -> manager pick for one side.
// On the destination side the origin's store is rejected with a same-store conflict.
//
// Example:
//
//	cmd, err := NewSelectStoreCommand(flowID, services.DestinationSide, storeID, "남성", managerID)
type SelectStoreCommand struct { //nolint:recvcheck //using for validation
	flowID     kernel.UUID
	side       services.Side
	storeID    kernel.UUID
	department string
	managerID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewSelectStoreCommand(
	flowID kernel.UUID,
	side services.Side,
	storeID kernel.UUID,
	department string,
	managerID kernel.UUID,
) (SelectStoreCommand, error) {
	command := SelectStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFlowID(flowID),
		command.setSide(side),
		command.setStoreID(storeID),
		command.setDepartment(department),
		command.setManagerID(managerID),
	); err != nil {
		return SelectStoreCommand{}, err
	}

	return command, nil
}

func (c SelectStoreCommand) Validate() error {
	return c.guard.Validate(ErrSelectStoreCommandIsNotConstructed)
}

func (c SelectStoreCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c SelectStoreCommand) Side() services.Side {
	return c.side
}

func (c SelectStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c SelectStoreCommand) Department() string {
	return c.department
}

func (c SelectStoreCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c *SelectStoreCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}

func (c *SelectStoreCommand) setSide(side services.Side) error {
	if side != services.OriginSide && side != services.DestinationSide {
		return errs.NewValueIsInvalidError("side")
	}

	c.side = side
	return nil
}

func (c *SelectStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("storeId")
	}

	c.storeID = storeID
	return nil
}

func (c *SelectStoreCommand) setDepartment(department string) error {
	if strings.TrimSpace(department) == "" {
		return errs.NewValueIsRequiredError("department")
	}

	c.department = department
	return nil
}

func (c *SelectStoreCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("managerId")
	}

	c.managerID = managerID
	return nil
}
