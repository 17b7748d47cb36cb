package commands

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/guard"
)

var ErrSubmitDeliveryRequestCommandIsNotConstructed = errors.New(
	"SubmitDeliveryRequestCommand must be created via NewSubmitDeliveryRequestCommand constructor",
)

// SubmitDeliveryRequestCommand sends the collected flow to the courier.
// requestID identifies the ledger entry written when the courier accepts it.
//
// Example:
//
//	cmd, err := NewSubmitDeliveryRequestCommand(flowID, kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, cmd)
//	var subErr *carrier.SubmissionError
//	if errors.As(err, &subErr) {
//	    showToUser(subErr.Message)
//	}
type SubmitDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	flowID    kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitDeliveryRequestCommand(flowID, requestID kernel.UUID) (SubmitDeliveryRequestCommand, error) {
	command := SubmitDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFlowID(flowID),
		command.setRequestID(requestID),
	); err != nil {
		return SubmitDeliveryRequestCommand{}, err
	}

	return command, nil
}

func (c SubmitDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryRequestCommandIsNotConstructed)
}

func (c SubmitDeliveryRequestCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c SubmitDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *SubmitDeliveryRequestCommand) setFlowID(flowID kernel.UUID) error {
	if err := flowID.Validate(); err != nil {
		return err
	}

	c.flowID = flowID
	return nil
}

func (c *SubmitDeliveryRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
