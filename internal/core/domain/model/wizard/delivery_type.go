package wizard

import (
	"fmt"

	"storecourier/internal/pkg/errs"
)

// DeliveryType is the first choice of the wizard.
type DeliveryType int

const (
	UnknownDeliveryType DeliveryType = iota
	StoreToStore
	StoreToWarehouse
	WarehouseToStore
)

func deliveryTypeLabels() map[DeliveryType]string {
	return map[DeliveryType]string{
		StoreToStore:     "매장 ↔ 매장",
		StoreToWarehouse: "매장 → 물류센터",
		WarehouseToStore: "물류센터 → 매장",
	}
}

// ParseDeliveryType accepts one of the three labels shown on the type page.
func ParseDeliveryType(label string) (DeliveryType, error) {
	for t, l := range deliveryTypeLabels() {
		if l == label {
			return t, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"deliveryType", fmt.Errorf("%q is not a delivery type", label))
}

func (t DeliveryType) Validate() error {
	if _, ok := deliveryTypeLabels()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType", fmt.Errorf("%d is not a delivery type", t))
	}
	return nil
}

func (t DeliveryType) String() string {
	if l, ok := deliveryTypeLabels()[t]; ok {
		return l
	}
	return ""
}
