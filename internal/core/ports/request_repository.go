package ports

import (
	"context"
	"time"

	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/kernel"
)

// SubmittedRequest is the ledger entry written after the courier accepted a request.
// Selections and addresses are flattened to what was shown and sent.
type SubmittedRequest struct {
	ID                     kernel.UUID
	FlowID                 kernel.UUID
	DeliveryType           string
	OriginStoreID          kernel.UUID
	DestinationStoreID     kernel.UUID
	OriginDisplayName      string
	DestinationDisplayName string
	OriginAddress          string
	DestinationAddress     string
	OriginDegraded         bool
	DestinationDegraded    bool
	Payload                carrier.Payload
	CourierMessage         string
	SubmittedAt            time.Time
}

// NewSubmittedRequest flattens an accepted submission.
func NewSubmittedRequest(
	flowID kernel.UUID,
	req carrier.SubmissionRequest,
	courierMessage string,
	at time.Time,
) SubmittedRequest {
	return SubmittedRequest{
		ID:                     req.RequestID,
		FlowID:                 flowID,
		DeliveryType:           req.DeliveryType.String(),
		OriginStoreID:          req.Origin.Store().ID(),
		DestinationStoreID:     req.Destination.Store().ID(),
		OriginDisplayName:      req.Origin.DisplayName(),
		DestinationDisplayName: req.Destination.DisplayName(),
		OriginAddress:          req.OriginAddress.DongAddress(),
		DestinationAddress:     req.DestinationAddress.DongAddress(),
		OriginDegraded:         req.OriginAddress.Degraded(),
		DestinationDegraded:    req.DestinationAddress.Degraded(),
		Payload:                req.Payload,
		CourierMessage:         courierMessage,
		SubmittedAt:            at,
	}
}

// RequestRepository persists accepted courier requests.
type RequestRepository interface {
	Add(ctx context.Context, request SubmittedRequest) error
	Get(ctx context.Context, id kernel.UUID) (SubmittedRequest, error)
}
