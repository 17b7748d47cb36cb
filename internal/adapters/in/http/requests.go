package http

import (
	"net/http"
	"strconv"

	"storecourier/internal/core/application/usecases/queries"
	"storecourier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListSubmittedRequests handles GET /api/v1/requests?limit=&storeId= - reads the ledger.
func (s *Server) ListSubmittedRequests(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = n
	}

	var storeID *kernel.UUID
	if raw := ctx.QueryParam("storeId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid store id")
		}
		storeID = &id
	}

	query, err := queries.NewListSubmittedRequestsQuery(limit, storeID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listSubmittedRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SubmittedRequest, len(rows))
	for i, r := range rows {
		response[i] = SubmittedRequest{
			ID:                     r.ID.String(),
			FlowID:                 r.FlowID.String(),
			DeliveryType:           r.DeliveryType,
			OriginDisplayName:      r.OriginDisplayName,
			DestinationDisplayName: r.DestinationDisplayName,
			OriginAddress:          r.OriginAddress,
			DestinationAddress:     r.DestinationAddress,
			PickupDate:             r.PickupDate,
			Memo:                   r.Memo,
			CourierMessage:         r.CourierMessage,
			SubmittedAt:            r.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
