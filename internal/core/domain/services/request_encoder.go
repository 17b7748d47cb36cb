package services

import (
	"fmt"
	"strings"
	"time"

	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/wizard"
)

// Wire codes of the courier API. Unmapped values fall back to the first code of each table.
const (
	defaultItemCode    = "2"
	defaultMethodCode  = "1"
	defaultRouteCode   = "1"
	defaultSpecialCode = "1"

	pickupDateLayout = "20060102150405"
)

// Memo labels, in output order.
const (
	memoLabelProductNumber = "품번"
	memoLabelOrderNumber   = "오더번호"
	memoLabelTicketNumber  = "티켓번호"
	memoLabelRegister      = "레지스터"
	memoLabelRequestNotes  = "요청사항"
)

func itemCodes() map[wizard.ItemType]string {
	return map[wizard.ItemType]string{
		wizard.ShoppingBag:    "2",
		wizard.ClothesUniform: "1",
		wizard.OtherItem:      "3",
	}
}

func methodCodes() map[wizard.DeliveryMethod]string {
	return map[wizard.DeliveryMethod]string{
		wizard.Motorcycle: "1",
		wizard.Van:        "2",
	}
}

func routeCodes() map[wizard.Route]string {
	return map[wizard.Route]string{
		wizard.OneWay:    "1",
		wizard.RoundTrip: "3",
	}
}

// Scheduled shares code 1 with "none": the courier learns about the schedule
// only through pickup_date and pick_hour/min/sec.
func specialCodes() map[wizard.SpecialOption]string {
	return map[wizard.SpecialOption]string{
		wizard.NoSpecialOption: "1",
		wizard.Express:         "3",
		wizard.Scheduled:       "1",
	}
}

func codeOr[T comparable](codes map[T]string, key T, fallback string) string {
	if c, ok := codes[key]; ok {
		return c
	}
	return fallback
}

// RequestEncoder turns a completed wizard state into the courier payload.
// It is pure apart from the injected clock, which is only read for unscheduled pickups.
type RequestEncoder struct {
	now      func() time.Time
	location *time.Location
}

// NewRequestEncoder interprets schedules and formats pickup times in loc.
func NewRequestEncoder(now func() time.Time, loc *time.Location) RequestEncoder {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return RequestEncoder{now: now, location: loc}
}

// Encode builds the payload. The payload carries no address fields: normalized addresses
// travel next to it in carrier.SubmissionRequest.
func (e RequestEncoder) Encode(state wizard.State) carrier.Payload {
	d := state.Details()
	pickup := e.PickupTime(d)

	return carrier.Payload{
		Kind:       codeOr(methodCodes(), d.DeliveryMethod, defaultMethodCode),
		ItemType:   codeOr(itemCodes(), d.ItemType, defaultItemCode),
		Doc:        codeOr(routeCodes(), d.Route, defaultRouteCode),
		SFast:      codeOr(specialCodes(), d.SpecialOption, defaultSpecialCode),
		PayGbn:     carrier.PayPrepaid,
		PickupDate: pickup.Format(pickupDateLayout),
		PickHour:   fmt.Sprintf("%02d", pickup.Hour()),
		PickMin:    fmt.Sprintf("%02d", pickup.Minute()),
		PickSec:    fmt.Sprintf("%02d", pickup.Second()),
		Memo:       BuildMemo(d.Product),
		ReasonDesc: carrier.ReasonDesc,
		OrderMemo:  carrier.OrderMemo,
	}
}

// PickupTime is the scheduled instant when the pickup is scheduled and both fields are set,
// otherwise now plus one hour. Seconds are always zero.
func (e RequestEncoder) PickupTime(d wizard.Details) time.Time {
	if d.SpecialOption == wizard.Scheduled && d.HasSchedule() {
		if at, err := d.ScheduledAt(e.location); err == nil {
			return at
		}
	}
	t := e.now().In(e.location).Add(time.Hour)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, e.location)
}

// BuildMemo writes one "label: value" line per field in fixed order. Blank fields are
// left out, others are written as entered. The product number is left out when it is flagged absent.
func BuildMemo(p wizard.ProductDetails) string {
	productNumber := p.ProductNumber
	if p.ProductNumberAbsent {
		productNumber = ""
	}

	fields := []struct {
		label string
		value string
	}{
		{memoLabelProductNumber, productNumber},
		{memoLabelOrderNumber, p.OrderNumber},
		{memoLabelTicketNumber, p.TicketNumber},
		{memoLabelRegister, p.Register},
		{memoLabelRequestNotes, p.RequestNotes},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.value) != "" {
			lines = append(lines, f.label+": "+f.value)
		}
	}
	return strings.Join(lines, "\n")
}
