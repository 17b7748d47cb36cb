package commands

import (
	"errors"
	"time"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/pkg/guard"
)

var ErrEnterDetailsCommandIsNotConstructed = errors.New(
	"EnterDetailsCommand must be created via NewEnterDetailsCommand constructor",
)

// DetailsInput is the shipment page as typed by the user. Option fields hold keys
// such as "shoppingBag" or "scheduled"; an empty key means not chosen yet.
type DetailsInput struct {
	ItemType       string
	DeliveryMethod string
	Route          string
	SpecialOption  string
	ScheduleDate   string
	ScheduleTime   string
	Product        wizard.ProductDetails
}

// EnterDetailsCommand stores the shipment page while the flow is at DetailsEntry.
// Missing choices are accepted here and reported at submission.
type EnterDetailsCommand struct { //nolint:recvcheck //using for validation
	flowID  kernel.UUID
	details wizard.Details

	guard guard.ConstructorGuard
}

func NewEnterDetailsCommand(flowID kernel.UUID, input DetailsInput) (EnterDetailsCommand, error) {
	command := EnterDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFlowID(flowID),
		command.setDetails(input),
	); err != nil {
		return EnterDetailsCommand{}, err
	}

	return command, nil
}

func (c EnterDetailsCommand) Validate() error {
	return c.guard.Validate(ErrEnterDetailsCommandIsNotConstructed)
}

func (c EnterDetailsCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c EnterDetailsCommand) Details() wizard.Details {
	return c.details
}

func (c *EnterDetailsCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}

func (c *EnterDetailsCommand) setDetails(input DetailsInput) error {
	itemType, itemErr := wizard.ParseItemType(input.ItemType)
	method, methodErr := wizard.ParseDeliveryMethod(input.DeliveryMethod)
	route, routeErr := wizard.ParseRoute(input.Route)
	special, specialErr := wizard.ParseSpecialOption(input.SpecialOption)
	if err := errors.Join(itemErr, methodErr, routeErr, specialErr); err != nil {
		return err
	}

	details := wizard.Details{
		ItemType:       itemType,
		DeliveryMethod: method,
		Route:          route,
		SpecialOption:  special,
		ScheduleDate:   input.ScheduleDate,
		ScheduleTime:   input.ScheduleTime,
		Product:        input.Product,
	}

	// The layout is checked now; whether the instant is in the past is decided at submission.
	if details.HasSchedule() {
		if _, err := details.ScheduledAt(time.UTC); err != nil {
			return err
		}
	}

	c.details = details
	return nil
}
