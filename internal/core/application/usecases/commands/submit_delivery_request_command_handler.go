package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/domain/services"
	"storecourier/internal/core/ports"
)

// ErrSubmissionInProgress rejects a second submission while the first is outstanding.
var ErrSubmissionInProgress = errors.New("a submission for this flow is already in progress")

// SubmitDeliveryRequestResponse is the confirmation shown after the courier accepted the request.
type SubmitDeliveryRequestResponse struct {
	RequestID          kernel.UUID
	Message            string
	Payload            carrier.Payload
	OriginAddress      address.Converted
	DestinationAddress address.Converted
}

// SubmitDeliveryRequestCommandHandler coordinates one submission:
// validate, normalize both addresses, encode, call the courier, report.
//
// No network call happens before validation passes. Address failures degrade and never block.
// A courier failure ends the attempt without retry. Only one submission per flow is in flight;
// the busy mark is released on every return path.
type SubmitDeliveryRequestCommandHandler struct {
	flows      ports.FlowRepository
	normalizer AddressNormalizer
	encoder    services.RequestEncoder
	gateway    ports.CourierGateway
	uowFactory RequestUoWFactory
	timeout    time.Duration
	clock      Clock
	location   *time.Location
	inFlight   *sync.Map
	logger     *slog.Logger
}

func NewSubmitDeliveryRequestCommandHandler(
	flows ports.FlowRepository,
	normalizer AddressNormalizer,
	encoder services.RequestEncoder,
	gateway ports.CourierGateway,
	uowFactory RequestUoWFactory,
	timeout time.Duration,
	clock Clock,
	location *time.Location,
	logger *slog.Logger,
) SubmitDeliveryRequestCommandHandler {
	return SubmitDeliveryRequestCommandHandler{
		flows:      flows,
		normalizer: normalizer,
		encoder:    encoder,
		gateway:    gateway,
		uowFactory: uowFactory,
		timeout:    timeout,
		clock:      clock,
		location:   location,
		inFlight:   &sync.Map{},
		logger:     logger.With("component", "submission_coordinator"),
	}
}

func (h SubmitDeliveryRequestCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitDeliveryRequestCommand,
) (SubmitDeliveryRequestResponse, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitDeliveryRequestResponse{}, err
	}

	key := cmd.FlowID().String()
	if _, busy := h.inFlight.LoadOrStore(key, struct{}{}); busy {
		return SubmitDeliveryRequestResponse{}, ErrSubmissionInProgress
	}
	defer h.inFlight.Delete(key)

	flow, err := h.flows.Get(ctx, cmd.FlowID())
	if err != nil {
		return SubmitDeliveryRequestResponse{}, err
	}

	state := flow.State()
	if err = state.ValidateForSubmission(h.clock(), h.location); err != nil {
		return SubmitDeliveryRequestResponse{}, err
	}

	request := h.buildRequest(ctx, cmd.RequestID(), state)

	result, err := h.submit(ctx, request)
	if err != nil {
		h.logger.ErrorContext(ctx, "Courier submission failed",
			"flow_id", key, "request_id", request.RequestID.String(), "error", err)
		return SubmitDeliveryRequestResponse{}, err
	}

	submittedAt := h.clock()
	if markErr := mutateFlow(ctx, h.flows, cmd.FlowID(), func(f *wizard.Flow) error {
		f.MarkSubmitted(submittedAt)
		return nil
	}); markErr != nil {
		h.logger.WarnContext(ctx, "Failed to reset flow after submission", "flow_id", key, "error", markErr)
	}

	h.record(ctx, ports.NewSubmittedRequest(cmd.FlowID(), request, result.Message, submittedAt))

	h.logger.InfoContext(ctx, "Courier request submitted",
		"flow_id", key,
		"request_id", request.RequestID.String(),
		"pickup_date", request.Payload.PickupDate,
		"courier_message", result.Message,
	)

	return SubmitDeliveryRequestResponse{
		RequestID:          request.RequestID,
		Message:            result.Message,
		Payload:            request.Payload,
		OriginAddress:      request.OriginAddress,
		DestinationAddress: request.DestinationAddress,
	}, nil
}

// buildRequest expects a state that passed ValidateForSubmission.
func (h SubmitDeliveryRequestCommandHandler) buildRequest(
	ctx context.Context,
	requestID kernel.UUID,
	state wizard.State,
) carrier.SubmissionRequest {
	origin, _ := state.Origin()
	destination, _ := state.Destination()

	originAddr, destinationAddr := h.normalizer.NormalizePair(
		ctx, origin.Store().Address(), destination.Store().Address())

	return carrier.SubmissionRequest{
		RequestID:          requestID,
		DeliveryType:       state.DeliveryType(),
		Origin:             origin,
		Destination:        destination,
		OriginAddress:      originAddr,
		DestinationAddress: destinationAddr,
		Payload:            h.encoder.Encode(state),
	}
}

// submit maps transport errors and rejections to *carrier.SubmissionError.
func (h SubmitDeliveryRequestCommandHandler) submit(
	ctx context.Context,
	request carrier.SubmissionRequest,
) (carrier.Result, error) {
	callCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.gateway.Submit(callCtx, request)
	if err != nil {
		return carrier.Result{}, carrier.NewSubmissionError("", err)
	}
	if !result.Success {
		return result, carrier.NewSubmissionError(result.Message, nil)
	}

	return result, nil
}

// record writes the ledger entry. The courier already accepted the request,
// so a failure here is logged and does not change the outcome.
func (h SubmitDeliveryRequestCommandHandler) record(ctx context.Context, entry ports.SubmittedRequest) {
	if err := h.writeLedger(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "Failed to record submitted request",
			"request_id", entry.ID.String(), "error", err)
	}
}

func (h SubmitDeliveryRequestCommandHandler) writeLedger(ctx context.Context, entry ports.SubmittedRequest) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RequestRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
