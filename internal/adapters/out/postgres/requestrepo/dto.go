// Package requestrepo persists the ledger of courier requests that were accepted.
package requestrepo

import (
	"time"

	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/ports"

	"github.com/google/uuid"
)

// SubmittedRequestDTO is one accepted request.
type SubmittedRequestDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FlowID                 uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryType           string     `gorm:"type:varchar(32);not null"`
	OriginStoreID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DestinationStoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OriginDisplayName      string     `gorm:"type:varchar(255);not null"`
	DestinationDisplayName string     `gorm:"type:varchar(255);not null"`
	OriginAddress          string     `gorm:"type:text;not null"`
	DestinationAddress     string     `gorm:"type:text;not null"`
	OriginDegraded         bool       `gorm:"not null"`
	DestinationDegraded    bool       `gorm:"not null"`
	Payload                PayloadDTO `gorm:"embedded;embeddedPrefix:payload_"`
	CourierMessage         string     `gorm:"type:text"`
	SubmittedAt            time.Time  `gorm:"not null;index"`
}

// TableName overrides GORM's default "submitted_request_dtos".
func (SubmittedRequestDTO) TableName() string {
	return "submitted_requests"
}

// PayloadDTO stores the wire payload column by column.
type PayloadDTO struct {
	Kind       string `gorm:"type:varchar(2)"`
	ItemType   string `gorm:"type:varchar(2)"`
	Doc        string `gorm:"type:varchar(2)"`
	SFast      string `gorm:"column:sfast;type:varchar(2)"`
	PayGbn     string `gorm:"type:varchar(2)"`
	PickupDate string `gorm:"type:char(14)"`
	PickHour   string `gorm:"type:char(2)"`
	PickMin    string `gorm:"type:char(2)"`
	PickSec    string `gorm:"type:char(2)"`
	Memo       string `gorm:"type:text"`
	ReasonDesc string `gorm:"type:varchar(64)"`
	OrderMemo  string `gorm:"type:varchar(64)"`
}

func fromDomain(r ports.SubmittedRequest) SubmittedRequestDTO {
	return SubmittedRequestDTO{
		ID:                     r.ID.Bytes(),
		FlowID:                 r.FlowID.Bytes(),
		DeliveryType:           r.DeliveryType,
		OriginStoreID:          r.OriginStoreID.Bytes(),
		DestinationStoreID:     r.DestinationStoreID.Bytes(),
		OriginDisplayName:      r.OriginDisplayName,
		DestinationDisplayName: r.DestinationDisplayName,
		OriginAddress:          r.OriginAddress,
		DestinationAddress:     r.DestinationAddress,
		OriginDegraded:         r.OriginDegraded,
		DestinationDegraded:    r.DestinationDegraded,
		Payload: PayloadDTO{
			Kind:       r.Payload.Kind,
			ItemType:   r.Payload.ItemType,
			Doc:        r.Payload.Doc,
			SFast:      r.Payload.SFast,
			PayGbn:     r.Payload.PayGbn,
			PickupDate: r.Payload.PickupDate,
			PickHour:   r.Payload.PickHour,
			PickMin:    r.Payload.PickMin,
			PickSec:    r.Payload.PickSec,
			Memo:       r.Payload.Memo,
			ReasonDesc: r.Payload.ReasonDesc,
			OrderMemo:  r.Payload.OrderMemo,
		},
		CourierMessage: r.CourierMessage,
		SubmittedAt:    r.SubmittedAt,
	}
}

func toDomain(dto SubmittedRequestDTO) (ports.SubmittedRequest, error) {
	ids := make([]kernel.UUID, 4)
	for i, raw := range []uuid.UUID{dto.ID, dto.FlowID, dto.OriginStoreID, dto.DestinationStoreID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return ports.SubmittedRequest{}, err
		}
		ids[i] = id
	}

	return ports.SubmittedRequest{
		ID:                     ids[0],
		FlowID:                 ids[1],
		DeliveryType:           dto.DeliveryType,
		OriginStoreID:          ids[2],
		DestinationStoreID:     ids[3],
		OriginDisplayName:      dto.OriginDisplayName,
		DestinationDisplayName: dto.DestinationDisplayName,
		OriginAddress:          dto.OriginAddress,
		DestinationAddress:     dto.DestinationAddress,
		OriginDegraded:         dto.OriginDegraded,
		DestinationDegraded:    dto.DestinationDegraded,
		Payload: carrier.Payload{
			Kind:       dto.Payload.Kind,
			ItemType:   dto.Payload.ItemType,
			Doc:        dto.Payload.Doc,
			SFast:      dto.Payload.SFast,
			PayGbn:     dto.Payload.PayGbn,
			PickupDate: dto.Payload.PickupDate,
			PickHour:   dto.Payload.PickHour,
			PickMin:    dto.Payload.PickMin,
			PickSec:    dto.Payload.PickSec,
			Memo:       dto.Payload.Memo,
			ReasonDesc: dto.Payload.ReasonDesc,
			OrderMemo:  dto.Payload.OrderMemo,
		},
		CourierMessage: dto.CourierMessage,
		SubmittedAt:    dto.SubmittedAt,
	}, nil
}
