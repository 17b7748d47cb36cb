package queries

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/guard"
)

var ErrGetFlowQueryIsNotConstructed = errors.New(
	"GetFlowQuery must be created via NewGetFlowQuery constructor",
)

// GetFlowQuery reads the current wizard state of a flow.
type GetFlowQuery struct { //nolint:recvcheck //using for validation
	flowID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetFlowQuery(flowID kernel.UUID) (GetFlowQuery, error) {
	if err := flowID.Validate(); err != nil {
		return GetFlowQuery{}, err
	}
	return GetFlowQuery{flowID: flowID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetFlowQuery) Validate() error {
	return q.guard.Validate(ErrGetFlowQueryIsNotConstructed)
}

func (q GetFlowQuery) FlowID() kernel.UUID {
	return q.flowID
}

// GetFlowQueryResponse mirrors the wizard state. Origin and Destination are nil until chosen.
type GetFlowQueryResponse struct {
	ID           kernel.UUID
	Step         int
	StepName     string
	DeliveryType string
	Origin       *SelectionView
	Destination  *SelectionView
	Details      DetailsView
	Submitted    bool
}

// DetailsView uses the same option keys the details page accepts.
type DetailsView struct {
	ItemType            string
	DeliveryMethod      string
	Route               string
	SpecialOption       string
	ScheduleDate        string
	ScheduleTime        string
	ProductNumber       string
	ProductNumberAbsent bool
	OrderNumber         string
	TicketNumber        string
	Register            string
	RequestNotes        string
}
