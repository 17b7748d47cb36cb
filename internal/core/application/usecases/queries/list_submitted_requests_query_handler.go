package queries

import (
	"context"
	"time"

	"storecourier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListSubmittedRequestsQueryHandler reads the submitted_requests table with plain SQL.
type ListSubmittedRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListSubmittedRequestsQueryHandler(db *gorm.DB) ListSubmittedRequestsQueryHandler {
	return ListSubmittedRequestsQueryHandler{db: db}
}

// Handle returns the newest requests first.
func (h ListSubmittedRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListSubmittedRequestsQuery,
) ([]ListSubmittedRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			flow_id,
			delivery_type,
			origin_display_name,
			destination_display_name,
			origin_address,
			destination_address,
			payload_pickup_date,
			payload_memo,
			courier_message,
			submitted_at
		FROM submitted_requests`
	args := make([]any, 0, 3)
	if query.StoreID() != nil {
		id := query.StoreID().Bytes()
		sql += `
		WHERE origin_store_id = ? OR destination_store_id = ?`
		args = append(args, id, id)
	}
	sql += `
		ORDER BY submitted_at DESC
		LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]ListSubmittedRequestsQueryResponse, 0)
	for rows.Next() {
		var r ListSubmittedRequestsQueryResponse
		var id, flowID uuid.UUID
		var submittedAt time.Time

		err = rows.Scan(
			&id,
			&flowID,
			&r.DeliveryType,
			&r.OriginDisplayName,
			&r.DestinationDisplayName,
			&r.OriginAddress,
			&r.DestinationAddress,
			&r.PickupDate,
			&r.Memo,
			&r.CourierMessage,
			&submittedAt,
		)
		if err != nil {
			return nil, err
		}

		if r.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if r.FlowID, err = kernel.UUIDFromBytes(flowID[:]); err != nil {
			return nil, err
		}
		r.SubmittedAt = submittedAt

		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
