package queries

import (
	"context"

	"storecourier/internal/core/domain/services"
	"storecourier/internal/core/ports"
)

// ListManagersQueryHandler walks the picker stages store -> department and returns the managers.
// Opening the origin's store on the destination side fails with a same-store conflict.
type ListManagersQueryHandler struct {
	flows ports.FlowRepository
}

func NewListManagersQueryHandler(flows ports.FlowRepository) ListManagersQueryHandler {
	return ListManagersQueryHandler{flows: flows}
}

func (h ListManagersQueryHandler) Handle(ctx context.Context, query ListManagersQuery) ([]ManagerView, error) {
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

	storePick, err := picker.SelectStore(query.StoreID())
	if err != nil {
		return nil, err
	}

	deptPick, err := storePick.SelectDepartment(query.Department())
	if err != nil {
		return nil, err
	}

	managers := deptPick.Managers()
	views := make([]ManagerView, 0, len(managers))
	for _, m := range managers {
		views = append(views, managerView(m))
	}

	return views, nil
}
