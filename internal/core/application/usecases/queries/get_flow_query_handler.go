package queries

import (
	"context"

	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

type GetFlowQueryHandler struct {
	flows ports.FlowRepository
}

func NewGetFlowQueryHandler(flows ports.FlowRepository) GetFlowQueryHandler {
	return GetFlowQueryHandler{flows: flows}
}

func (h GetFlowQueryHandler) Handle(ctx context.Context, query GetFlowQuery) (GetFlowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFlowQueryResponse{}, err
	}

	flow, err := h.flows.Get(ctx, query.FlowID())
	if err != nil {
		return GetFlowQueryResponse{}, err
	}

	return flowResponse(flow), nil
}

func flowResponse(flow *wizard.Flow) GetFlowQueryResponse {
	state := flow.State()
	d := state.Details()

	resp := GetFlowQueryResponse{
		ID:           flow.ID(),
		Step:         int(state.Step()),
		StepName:     state.Step().String(),
		DeliveryType: state.DeliveryType().String(),
		Submitted:    flow.Submitted(),
		Details: DetailsView{
			ItemType:            d.ItemType.String(),
			DeliveryMethod:      d.DeliveryMethod.String(),
			Route:               d.Route.String(),
			SpecialOption:       d.SpecialOption.String(),
			ScheduleDate:        d.ScheduleDate,
			ScheduleTime:        d.ScheduleTime,
			ProductNumber:       d.Product.ProductNumber,
			ProductNumberAbsent: d.Product.ProductNumberAbsent,
			OrderNumber:         d.Product.OrderNumber,
			TicketNumber:        d.Product.TicketNumber,
			Register:            d.Product.Register,
			RequestNotes:        d.Product.RequestNotes,
		},
	}

	if origin, ok := state.Origin(); ok {
		resp.Origin = selectionView(origin)
	}
	if destination, ok := state.Destination(); ok {
		resp.Destination = selectionView(destination)
	}

	return resp
}
