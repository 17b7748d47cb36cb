package ports

import (
	"context"

	"storecourier/internal/core/domain/model/carrier"
)

// CourierGateway sends an authenticated request to the courier submission service.
// A transport failure is returned as error; a rejected request is a Result with Success false.
type CourierGateway interface {
	Submit(ctx context.Context, request carrier.SubmissionRequest) (carrier.Result, error)
}
