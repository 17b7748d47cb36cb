// Package carrier describes what is sent to the third-party courier API and what comes back.
package carrier

import (
	"errors"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
)

const (
	// PayPrepaid is the only payment mode used for inter-store pickups.
	PayPrepaid = "1"

	// ReasonDesc and OrderMemo are fixed tags the courier uses to classify our requests.
	ReasonDesc = "매장간 이동"
	OrderMemo  = "store-courier"

	// GenericFailureMessage is shown when the courier gives no reason.
	GenericFailureMessage = "배송 요청에 실패했습니다."
)

// Payload is the exact record the courier API expects. Field names are the wire names.
type Payload struct {
	Kind       string `json:"kind"`
	ItemType   string `json:"item_type"`
	Doc        string `json:"doc"`
	SFast      string `json:"sfast"`
	PayGbn     string `json:"pay_gbn"`
	PickupDate string `json:"pickup_date"`
	PickHour   string `json:"pick_hour"`
	PickMin    string `json:"pick_min"`
	PickSec    string `json:"pick_sec"`
	Memo       string `json:"memo"`
	ReasonDesc string `json:"reason_desc"`
	OrderMemo  string `json:"order_memo"`
}

// SubmissionRequest bundles the payload with both selections and both normalized addresses.
type SubmissionRequest struct {
	RequestID          kernel.UUID
	DeliveryType       wizard.DeliveryType
	Origin             wizard.Selection
	Destination        wizard.Selection
	OriginAddress      address.Converted
	DestinationAddress address.Converted
	Payload            Payload
}

// Result is the courier service answer.
type Result struct {
	Success bool
	Message string
}

var ErrSubmissionFailed = errors.New("courier submission failed")

// SubmissionError ends one submission attempt. Message is what the user sees.
type SubmissionError struct {
	Message string
	Cause   error
}

// NewSubmissionError keeps the courier's message verbatim, or falls back to GenericFailureMessage.
func NewSubmissionError(message string, cause error) *SubmissionError {
	if message == "" {
		message = GenericFailureMessage
	}
	return &SubmissionError{Message: message, Cause: cause}
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return ErrSubmissionFailed.Error() + ": " + e.Message + " (cause: " + e.Cause.Error() + ")"
	}
	return ErrSubmissionFailed.Error() + ": " + e.Message
}

func (e *SubmissionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrSubmissionFailed, e.Cause}
	}
	return []error{ErrSubmissionFailed}
}
