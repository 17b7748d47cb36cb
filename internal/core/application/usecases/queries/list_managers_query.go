package queries

import (
	"errors"
	"strings"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

var ErrListManagersQueryIsNotConstructed = errors.New(
	"ListManagersQuery must be created via NewListManagersQuery constructor",
)

// ListManagersQuery opens the manager stage of a pick: the managers of one department.
type ListManagersQuery struct { //nolint:recvcheck //using for validation
	flowID     kernel.UUID
	side       services.Side
	storeID    kernel.UUID
	department string

	guard guard.ConstructorGuard
}

func NewListManagersQuery(
	flowID kernel.UUID,
	side services.Side,
	storeID kernel.UUID,
	department string,
) (ListManagersQuery, error) {
	var sideErr, deptErr, storeErr error
	if side != services.OriginSide && side != services.DestinationSide {
		sideErr = errs.NewValueIsInvalidError("side")
	}
	if strings.TrimSpace(department) == "" {
		deptErr = errs.NewValueIsRequiredError("department")
	}
	if storeID.Validate() != nil {
		storeErr = errs.NewValueIsRequiredError("storeId")
	}
	if err := errors.Join(flowID.Validate(), sideErr, storeErr, deptErr); err != nil {
		return ListManagersQuery{}, err
	}

	return ListManagersQuery{
		flowID:     flowID,
		side:       side,
		storeID:    storeID,
		department: department,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListManagersQuery) Validate() error {
	return q.guard.Validate(ErrListManagersQueryIsNotConstructed)
}

func (q ListManagersQuery) FlowID() kernel.UUID {
	return q.flowID
}

func (q ListManagersQuery) Side() services.Side {
	return q.side
}

func (q ListManagersQuery) StoreID() kernel.UUID {
	return q.storeID
}

func (q ListManagersQuery) Department() string {
	return q.department
}
