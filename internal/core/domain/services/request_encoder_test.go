package services_test

import (
	"regexp"
	"testing"
	"time"

	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kst            = time.FixedZone("KST", 9*60*60)
	pickupDateRule = regexp.MustCompile(`^\d{14}$`)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func stateWithDetails(t *testing.T, f directoryFixture, d wizard.Details) wizard.State {
	t.Helper()
	origin, err := services.NewOriginPicker(f.index).Resolve(f.storeA.ID(), "여성", f.manager1.ID())
	require.NoError(t, err)
	dest, err := services.NewDestinationPicker(f.index, origin).Resolve(f.storeB.ID(), "남성", f.manager2.ID())
	require.NoError(t, err)

	s := wizard.NewState()
	require.NoError(t, s.SetDeliveryType(wizard.StoreToStore))
	require.NoError(t, s.SetOriginStore(origin))
	require.NoError(t, s.SetDestinationStore(dest))
	require.NoError(t, s.SetDetails(d))
	return s
}

func TestRequestEncoder_ScenarioA(t *testing.T) {
	f := newDirectoryFixture(t)
	enc := services.NewRequestEncoder(fixedClock(time.Date(2025, 9, 1, 14, 7, 33, 0, kst)), kst)
	state := stateWithDetails(t, f, wizard.Details{
		ItemType:       wizard.ShoppingBag,
		DeliveryMethod: wizard.Motorcycle,
		Route:          wizard.OneWay,
		SpecialOption:  wizard.NoSpecialOption,
	})

	p := enc.Encode(state)

	assert.Equal(t, carrier.Payload{
		Kind:       "1",
		ItemType:   "2",
		Doc:        "1",
		SFast:      "1",
		PayGbn:     "1",
		PickupDate: "20250901150700",
		PickHour:   "15",
		PickMin:    "07",
		PickSec:    "00",
		Memo:       "",
		ReasonDesc: carrier.ReasonDesc,
		OrderMemo:  carrier.OrderMemo,
	}, p)
}

func TestRequestEncoder_ScenarioB_Scheduled(t *testing.T) {
	f := newDirectoryFixture(t)
	enc := services.NewRequestEncoder(fixedClock(time.Date(2025, 9, 1, 8, 0, 0, 0, kst)), kst)
	state := stateWithDetails(t, f, wizard.Details{
		ItemType:       wizard.ClothesUniform,
		DeliveryMethod: wizard.Van,
		Route:          wizard.RoundTrip,
		SpecialOption:  wizard.Scheduled,
		ScheduleDate:   "2025-09-02",
		ScheduleTime:   "23:59",
	})

	p := enc.Encode(state)

	assert.Equal(t, "20250902235900", p.PickupDate)
	assert.Equal(t, "23", p.PickHour)
	assert.Equal(t, "59", p.PickMin)
	assert.Equal(t, "00", p.PickSec)
	assert.Equal(t, "1", p.SFast, "scheduled shares the code of none")
	assert.Equal(t, "1", p.ItemType)
	assert.Equal(t, "2", p.Kind)
	assert.Equal(t, "3", p.Doc)
}

func TestRequestEncoder_CodeTables(t *testing.T) {
	f := newDirectoryFixture(t)
	enc := services.NewRequestEncoder(fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, kst)), kst)

	testCases := []struct {
		name     string
		details  wizard.Details
		expected [4]string // kind, item_type, doc, sfast
	}{
		{"other item express", wizard.Details{ItemType: wizard.OtherItem, DeliveryMethod: wizard.Motorcycle, Route: wizard.OneWay, SpecialOption: wizard.Express}, [4]string{"1", "3", "1", "3"}},
		{"unmapped values take defaults", wizard.Details{ItemType: wizard.ItemType(99), DeliveryMethod: wizard.DeliveryMethod(99), Route: wizard.Route(99), SpecialOption: wizard.SpecialOption(99)}, [4]string{"1", "2", "1", "1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := enc.Encode(stateWithDetails(t, f, tc.details))
			assert.Equal(t, tc.expected, [4]string{p.Kind, p.ItemType, p.Doc, p.SFast})
		})
	}
}

func TestRequestEncoder_Determinism(t *testing.T) {
	f := newDirectoryFixture(t)
	enc := services.NewRequestEncoder(fixedClock(time.Date(2025, 12, 31, 23, 30, 59, 0, kst)), kst)
	state := stateWithDetails(t, f, wizard.Details{
		ItemType:       wizard.ShoppingBag,
		DeliveryMethod: wizard.Motorcycle,
		Route:          wizard.OneWay,
		SpecialOption:  wizard.Express,
		Product:        wizard.ProductDetails{OrderNumber: "123", RequestNotes: "파손 주의"},
	})

	first := enc.Encode(state)
	second := enc.Encode(state)

	assert.Equal(t, first, second)
	assert.Equal(t, "20260101003000", first.PickupDate, "rolls over the year")
}

func TestRequestEncoder_PickupDateIsAlways14Digits(t *testing.T) {
	f := newDirectoryFixture(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, kst)
	details := []wizard.Details{
		{SpecialOption: wizard.NoSpecialOption},
		{SpecialOption: wizard.Scheduled, ScheduleDate: "2025-03-04", ScheduleTime: "05:06"},
		{SpecialOption: wizard.Scheduled, ScheduleDate: "2025-03-04"},
		{SpecialOption: wizard.Scheduled, ScheduleDate: "bad", ScheduleTime: "worse"},
	}

	for minutes := 0; minutes < 60*24*2; minutes += 97 {
		enc := services.NewRequestEncoder(fixedClock(base.Add(time.Duration(minutes)*time.Minute+17*time.Second)), kst)
		for _, d := range details {
			p := enc.Encode(stateWithDetails(t, f, d))

			assert.Regexp(t, pickupDateRule, p.PickupDate)
			assert.Equal(t, "00", p.PickSec)
			assert.Equal(t, p.PickupDate[8:10], p.PickHour)
			assert.Equal(t, p.PickupDate[10:12], p.PickMin)
		}
	}
}

func TestBuildMemo(t *testing.T) {
	testCases := []struct {
		name     string
		product  wizard.ProductDetails
		expected string
	}{
		{"only order number", wizard.ProductDetails{OrderNumber: "123"}, "오더번호: 123"},
		{"absent product number is omitted", wizard.ProductDetails{ProductNumber: "P-1", ProductNumberAbsent: true, OrderNumber: "123"}, "오더번호: 123"},
		{"nothing", wizard.ProductDetails{}, ""},
		{
			"all fields in fixed order",
			wizard.ProductDetails{
				ProductNumber: "P-1",
				OrderNumber:   "O-2",
				TicketNumber:  "T-3",
				Register:      "R-4",
				RequestNotes:  "문 앞에 두세요",
			},
			"품번: P-1\n오더번호: O-2\n티켓번호: T-3\n레지스터: R-4\n요청사항: 문 앞에 두세요",
		},
		{"blank values are skipped", wizard.ProductDetails{TicketNumber: "  ", Register: "R-4"}, "레지스터: R-4"},
		{"values are written as entered", wizard.ProductDetails{RequestNotes: "  x  "}, "요청사항:   x  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, services.BuildMemo(tc.product))
		})
	}
}
