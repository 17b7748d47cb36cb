package queries

import (
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

var ErrSearchStoresQueryIsNotConstructed = errors.New(
	"SearchStoresQuery must be created via NewSearchStoresQuery constructor",
)

// SearchStoresQuery lists the stores of a flow's directory for one side.
// An empty text lists every store.
//
// Example:
//
//	query, err := NewSearchStoresQuery(flowID, services.DestinationSide, "강남")
//	stores, err := handler.Handle(ctx, query)
//	for _, s := range stores {
//	    fmt.Println(s.Name, s.Selectable)
//	}
type SearchStoresQuery struct { //nolint:recvcheck //using for validation
	flowID kernel.UUID
	side   services.Side
	text   string

	guard guard.ConstructorGuard
}

func NewSearchStoresQuery(flowID kernel.UUID, side services.Side, text string) (SearchStoresQuery, error) {
	var sideErr error
	if side != services.OriginSide && side != services.DestinationSide {
		sideErr = errs.NewValueIsInvalidError("side")
	}
	if err := errors.Join(flowID.Validate(), sideErr); err != nil {
		return SearchStoresQuery{}, err
	}

	return SearchStoresQuery{
		flowID: flowID,
		side:   side,
		text:   text,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q SearchStoresQuery) Validate() error {
	return q.guard.Validate(ErrSearchStoresQueryIsNotConstructed)
}

func (q SearchStoresQuery) FlowID() kernel.UUID {
	return q.flowID
}

func (q SearchStoresQuery) Side() services.Side {
	return q.side
}

func (q SearchStoresQuery) Text() string {
	return q.text
}
