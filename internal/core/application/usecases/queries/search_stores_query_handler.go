package queries

import (
	"context"

	"storecourier/internal/core/domain/services"
	"storecourier/internal/core/ports"
)

// SearchStoresQueryHandler runs the picker search. On the destination side the origin's
// store is listed with Selectable false.
type SearchStoresQueryHandler struct {
	flows ports.FlowRepository
}

func NewSearchStoresQueryHandler(flows ports.FlowRepository) SearchStoresQueryHandler {
	return SearchStoresQueryHandler{flows: flows}
}

func (h SearchStoresQueryHandler) Handle(ctx context.Context, query SearchStoresQuery) ([]StoreView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	flow, err := h.flows.Get(ctx, query.FlowID())
	if err != nil {
		return nil, err
	}

	picker, err := services.NewPickerFor(flow.Directory(), query.Side(), flow.State())
	if err != nil {
		return nil, err
	}

	options := picker.Search(query.Text())
	views := make([]StoreView, 0, len(options))
	for _, o := range options {
		views = append(views, StoreView{
			ID:          o.Store.ID(),
			Code:        o.Store.Code(),
			Name:        o.Store.Name(),
			Address:     o.Store.Address(),
			Departments: o.Store.DepartmentLabels(),
			Selectable:  o.Selectable,
		})
	}

	return views, nil
}
