package http

import (
	"time"

	"storecourier/internal/core/application/usecases/commands"
	"storecourier/internal/core/application/usecases/queries"
	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/wizard"
)

type ChooseDeliveryTypeRequest struct {
	DeliveryType string `json:"deliveryType"`
}

type SelectStoreRequest struct {
	StoreID    string `json:"storeId"`
	Department string `json:"department"`
	ManagerID  string `json:"managerId"`
}

type DetailsRequest struct {
	ItemType            string `json:"itemType"`
	DeliveryMethod      string `json:"deliveryMethod"`
	Route               string `json:"route"`
	SpecialOption       string `json:"specialOption"`
	ScheduleDate        string `json:"scheduleDate"`
	ScheduleTime        string `json:"scheduleTime"`
	ProductNumber       string `json:"productNumber"`
	ProductNumberAbsent bool   `json:"productNumberAbsent"`
	OrderNumber         string `json:"orderNumber"`
	TicketNumber        string `json:"ticketNumber"`
	Register            string `json:"register"`
	RequestNotes        string `json:"requestNotes"`
}

func (r DetailsRequest) toInput() commands.DetailsInput {
	return commands.DetailsInput{
		ItemType:       r.ItemType,
		DeliveryMethod: r.DeliveryMethod,
		Route:          r.Route,
		SpecialOption:  r.SpecialOption,
		ScheduleDate:   r.ScheduleDate,
		ScheduleTime:   r.ScheduleTime,
		Product: wizard.ProductDetails{
			ProductNumber:       r.ProductNumber,
			ProductNumberAbsent: r.ProductNumberAbsent,
			OrderNumber:         r.OrderNumber,
			TicketNumber:        r.TicketNumber,
			Register:            r.Register,
			RequestNotes:        r.RequestNotes,
		},
	}
}

type NavigateBackRequest struct {
	Step int `json:"step"`
}

type Selection struct {
	StoreID      string `json:"storeId"`
	StoreName    string `json:"storeName"`
	Department   string `json:"department"`
	ManagerID    string `json:"managerId"`
	ManagerName  string `json:"managerName"`
	ManagerPhone string `json:"managerPhone"`
	DisplayName  string `json:"displayName"`
}

type Details struct {
	ItemType            string `json:"itemType,omitempty"`
	DeliveryMethod      string `json:"deliveryMethod,omitempty"`
	Route               string `json:"route,omitempty"`
	SpecialOption       string `json:"specialOption,omitempty"`
	ScheduleDate        string `json:"scheduleDate,omitempty"`
	ScheduleTime        string `json:"scheduleTime,omitempty"`
	ProductNumber       string `json:"productNumber,omitempty"`
	ProductNumberAbsent bool   `json:"productNumberAbsent"`
	OrderNumber         string `json:"orderNumber,omitempty"`
	TicketNumber        string `json:"ticketNumber,omitempty"`
	Register            string `json:"register,omitempty"`
	RequestNotes        string `json:"requestNotes,omitempty"`
}

type Flow struct {
	ID           string     `json:"id"`
	Step         int        `json:"step"`
	StepName     string     `json:"stepName"`
	DeliveryType string     `json:"deliveryType,omitempty"`
	Origin       *Selection `json:"origin,omitempty"`
	Destination  *Selection `json:"destination,omitempty"`
	Details      Details    `json:"details"`
	Submitted    bool       `json:"submitted"`
}

type Store struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Departments []string `json:"departments"`
	Selectable  bool     `json:"selectable"`
}

type Manager struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PhoneDisplay string `json:"phoneDisplay"`
}

type Address struct {
	Original    string `json:"original"`
	DongAddress string `json:"dongAddress"`
	LegalDong   string `json:"legalDong,omitempty"`
	Degraded    bool   `json:"degraded"`
}

type SubmitResponse struct {
	RequestID          string          `json:"requestId"`
	Message            string          `json:"message"`
	Payload            carrier.Payload `json:"payload"`
	OriginAddress      Address         `json:"originAddress"`
	DestinationAddress Address         `json:"destinationAddress"`
}

type SubmittedRequest struct {
	ID                     string    `json:"id"`
	FlowID                 string    `json:"flowId"`
	DeliveryType           string    `json:"deliveryType"`
	OriginDisplayName      string    `json:"originDisplayName"`
	DestinationDisplayName string    `json:"destinationDisplayName"`
	OriginAddress          string    `json:"originAddress"`
	DestinationAddress     string    `json:"destinationAddress"`
	PickupDate             string    `json:"pickupDate"`
	Memo                   string    `json:"memo"`
	CourierMessage         string    `json:"courierMessage"`
	SubmittedAt            time.Time `json:"submittedAt"`
}

func toFlow(v queries.GetFlowQueryResponse) Flow {
	return Flow{
		ID:           v.ID.String(),
		Step:         v.Step,
		StepName:     v.StepName,
		DeliveryType: v.DeliveryType,
		Origin:       toSelection(v.Origin),
		Destination:  toSelection(v.Destination),
		Details: Details{
			ItemType:            v.Details.ItemType,
			DeliveryMethod:      v.Details.DeliveryMethod,
			Route:               v.Details.Route,
			SpecialOption:       v.Details.SpecialOption,
			ScheduleDate:        v.Details.ScheduleDate,
			ScheduleTime:        v.Details.ScheduleTime,
			ProductNumber:       v.Details.ProductNumber,
			ProductNumberAbsent: v.Details.ProductNumberAbsent,
			OrderNumber:         v.Details.OrderNumber,
			TicketNumber:        v.Details.TicketNumber,
			Register:            v.Details.Register,
			RequestNotes:        v.Details.RequestNotes,
		},
		Submitted: v.Submitted,
	}
}

func toSelection(v *queries.SelectionView) *Selection {
	if v == nil {
		return nil
	}
	return &Selection{
		StoreID:      v.StoreID.String(),
		StoreName:    v.StoreName,
		Department:   v.Department,
		ManagerID:    v.ManagerID.String(),
		ManagerName:  v.ManagerName,
		ManagerPhone: v.ManagerPhone,
		DisplayName:  v.DisplayName,
	}
}

func toAddress(c address.Converted) Address {
	return Address{
		Original:    c.Original(),
		DongAddress: c.DongAddress(),
		LegalDong:   c.LegalDong(),
		Degraded:    c.Degraded(),
	}
}
