package queries

import (
	"errors"
	"time"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

const (
	DefaultSubmittedRequestsLimit = 50
	MaxSubmittedRequestsLimit     = 500
)

var ErrListSubmittedRequestsQueryIsNotConstructed = errors.New(
	"ListSubmittedRequestsQuery must be created via NewListSubmittedRequestsQuery constructor",
)

// ListSubmittedRequestsQuery reads the newest accepted requests from the ledger.
// A store id, when given, keeps requests where that store is the origin or the destination.
//
// Example:
//
//	query, err := NewListSubmittedRequestsQuery(20, nil)
//	requests, err := handler.Handle(ctx, query)
type ListSubmittedRequestsQuery struct { //nolint:recvcheck //using for validation
	limit   int
	storeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListSubmittedRequestsQuery uses DefaultSubmittedRequestsLimit for a zero limit.
func NewListSubmittedRequestsQuery(limit int, storeID *kernel.UUID) (ListSubmittedRequestsQuery, error) {
	if limit == 0 {
		limit = DefaultSubmittedRequestsLimit
	}
	if limit < 1 || limit > MaxSubmittedRequestsLimit {
		return ListSubmittedRequestsQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, MaxSubmittedRequestsLimit)
	}
	if storeID != nil {
		if err := storeID.Validate(); err != nil {
			return ListSubmittedRequestsQuery{}, err
		}
	}

	return ListSubmittedRequestsQuery{
		limit:   limit,
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListSubmittedRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListSubmittedRequestsQueryIsNotConstructed)
}

func (q ListSubmittedRequestsQuery) Limit() int {
	return q.limit
}

func (q ListSubmittedRequestsQuery) StoreID() *kernel.UUID {
	return q.storeID
}

// ListSubmittedRequestsQueryResponse is one ledger row.
type ListSubmittedRequestsQueryResponse struct {
	ID                     kernel.UUID
	FlowID                 kernel.UUID
	DeliveryType           string
	OriginDisplayName      string
	DestinationDisplayName string
	OriginAddress          string
	DestinationAddress     string
	PickupDate             string
	Memo                   string
	CourierMessage         string
	SubmittedAt            time.Time
}
