package wizard

import (
	"fmt"
	"strings"
	"time"

	"storecourier/internal/pkg/errs"
)

const (
	ScheduleDateLayout = "2006-01-02"
	ScheduleTimeLayout = "15:04"
)

type ItemType int

const (
	UnknownItemType ItemType = iota
	ShoppingBag
	ClothesUniform
	OtherItem
)

type DeliveryMethod int

const (
	UnknownDeliveryMethod DeliveryMethod = iota
	Motorcycle
	Van
)

type Route int

const (
	UnknownRoute Route = iota
	OneWay
	RoundTrip
)

type SpecialOption int

const (
	UnknownSpecialOption SpecialOption = iota
	NoSpecialOption
	Express
	Scheduled
)

func itemTypeKeys() map[ItemType]string {
	return map[ItemType]string{ShoppingBag: "shoppingBag", ClothesUniform: "clothesUniform", OtherItem: "other"}
}

func deliveryMethodKeys() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{Motorcycle: "motorcycle", Van: "van"}
}

func routeKeys() map[Route]string {
	return map[Route]string{OneWay: "oneway", RoundTrip: "roundtrip"}
}

func specialOptionKeys() map[SpecialOption]string {
	return map[SpecialOption]string{NoSpecialOption: "none", Express: "express", Scheduled: "scheduled"}
}

func parseKey[T comparable](param, key string, keys map[T]string) (T, error) {
	var zero T
	if key == "" {
		return zero, nil
	}
	for v, k := range keys {
		if k == key {
			return v, nil
		}
	}
	return zero, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a known value", key))
}

// ParseItemType maps "shoppingBag", "clothesUniform" or "other". An empty key means not chosen.
func ParseItemType(key string) (ItemType, error) {
	return parseKey("itemType", key, itemTypeKeys())
}

// ParseDeliveryMethod maps "motorcycle" or "van". An empty key means not chosen.
func ParseDeliveryMethod(key string) (DeliveryMethod, error) {
	return parseKey("deliveryMethod", key, deliveryMethodKeys())
}

// ParseRoute maps "oneway" or "roundtrip". An empty key means not chosen.
func ParseRoute(key string) (Route, error) {
	return parseKey("route", key, routeKeys())
}

// ParseSpecialOption maps "none", "express" or "scheduled". An empty key means not chosen.
func ParseSpecialOption(key string) (SpecialOption, error) {
	return parseKey("specialOption", key, specialOptionKeys())
}

func (i ItemType) String() string       { return itemTypeKeys()[i] }
func (m DeliveryMethod) String() string { return deliveryMethodKeys()[m] }
func (r Route) String() string          { return routeKeys()[r] }
func (o SpecialOption) String() string  { return specialOptionKeys()[o] }

// ProductDetails are the free-text fields that end up in the courier memo.
type ProductDetails struct {
	ProductNumber       string
	ProductNumberAbsent bool
	OrderNumber         string
	TicketNumber        string
	Register            string
	RequestNotes        string
}

// Details is the shipment page of the wizard. Zero values mean "not chosen yet".
type Details struct {
	ItemType       ItemType
	DeliveryMethod DeliveryMethod
	Route          Route
	SpecialOption  SpecialOption
	ScheduleDate   string
	ScheduleTime   string
	Product        ProductDetails
}

// HasSchedule reports whether both schedule fields are filled.
func (d Details) HasSchedule() bool {
	return strings.TrimSpace(d.ScheduleDate) != "" && strings.TrimSpace(d.ScheduleTime) != ""
}

// ScheduledAt parses the schedule fields in loc with seconds at zero.
func (d Details) ScheduledAt(loc *time.Location) (time.Time, error) {
	if !d.HasSchedule() {
		return time.Time{}, errs.NewValueIsRequiredError("schedule")
	}
	at, err := time.ParseInLocation(
		ScheduleDateLayout+" "+ScheduleTimeLayout,
		strings.TrimSpace(d.ScheduleDate)+" "+strings.TrimSpace(d.ScheduleTime),
		loc,
	)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("schedule", err)
	}
	return at, nil
}

// Validate checks the shipment fields in submission order: item type, method, route,
// special option, then the schedule when the pickup is scheduled. The first failure wins.
func (d Details) Validate(now time.Time, loc *time.Location) error {
	switch {
	case d.ItemType == UnknownItemType:
		return errs.NewValueIsRequiredError("itemType")
	case d.DeliveryMethod == UnknownDeliveryMethod:
		return errs.NewValueIsRequiredError("deliveryMethod")
	case d.Route == UnknownRoute:
		return errs.NewValueIsRequiredError("route")
	case d.SpecialOption == UnknownSpecialOption:
		return errs.NewValueIsRequiredError("specialOption")
	}

	if d.SpecialOption != Scheduled {
		return nil
	}
	if strings.TrimSpace(d.ScheduleDate) == "" {
		return errs.NewValueIsRequiredError("scheduleDate")
	}
	if strings.TrimSpace(d.ScheduleTime) == "" {
		return errs.NewValueIsRequiredError("scheduleTime")
	}
	at, err := d.ScheduledAt(loc)
	if err != nil {
		return err
	}
	if at.Before(now.In(loc).Truncate(time.Minute)) {
		return errs.NewValueIsInvalidErrorWithCause("schedule", fmt.Errorf("%s is in the past", at.Format(time.DateTime)))
	}
	return nil
}
