package commands

import (
	"errors"
	"time"

	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

var ErrReapIdleFlowsCommandIsNotConstructed = errors.New(
	"ReapIdleFlowsCommand must be created via NewReapIdleFlowsCommand constructor",
)

// ReapIdleFlowsCommand drops every flow left untouched for longer than idleTTL.
type ReapIdleFlowsCommand struct { //nolint:recvcheck //using for validation
	idleTTL time.Duration

	guard guard.ConstructorGuard
}

func NewReapIdleFlowsCommand(idleTTL time.Duration) (ReapIdleFlowsCommand, error) {
	if idleTTL <= 0 {
		return ReapIdleFlowsCommand{}, errs.NewValueIsInvalidError("idleTTL")
	}

	return ReapIdleFlowsCommand{
		idleTTL: idleTTL,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReapIdleFlowsCommand) Validate() error {
	return c.guard.Validate(ErrReapIdleFlowsCommandIsNotConstructed)
}

func (c ReapIdleFlowsCommand) IdleTTL() time.Duration {
	return c.idleTTL
}
