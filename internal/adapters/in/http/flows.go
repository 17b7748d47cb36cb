package http

import (
	"errors"
	"fmt"
	"net/http"

	"storecourier/internal/core/application/usecases/commands"
	"storecourier/internal/core/application/usecases/queries"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// StartFlow handles POST /api/v1/flows - opens a wizard session at the type page.
func (s *Server) StartFlow(ctx echo.Context) error {
	flowID := kernel.NewUUID()

	cmd, err := commands.NewStartFlowCommand(flowID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.startFlowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithFlow(ctx, http.StatusCreated, flowID)
}

// GetFlow handles GET /api/v1/flows/:flowId.
func (s *Server) GetFlow(ctx echo.Context) error {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return badRequest(ctx, "Invalid flow id")
	}
	return s.respondWithFlow(ctx, http.StatusOK, flowID)
}

// ChooseDeliveryType handles POST /api/v1/flows/:flowId/type.
func (s *Server) ChooseDeliveryType(ctx echo.Context) error {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return badRequest(ctx, "Invalid flow id")
	}

	var body ChooseDeliveryTypeRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChooseDeliveryTypeCommand(flowID, body.DeliveryType)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.chooseDeliveryTypeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithFlow(ctx, http.StatusOK, flowID)
}

// SearchStores handles GET /api/v1/flows/:flowId/stores/:side?q=.
func (s *Server) SearchStores(ctx echo.Context) error {
	flowID, side, err := flowAndSide(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewSearchStoresQuery(flowID, side, ctx.QueryParam("q"))
	if err != nil {
		return writeError(ctx, err)
	}

	stores, err := s.searchStoresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Store, len(stores))
	for i, st := range stores {
		response[i] = Store{
			ID:          st.ID.String(),
			Code:        st.Code,
			Name:        st.Name,
			Address:     st.Address,
			Departments: st.Departments,
			Selectable:  st.Selectable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectStore handles POST /api/v1/flows/:flowId/stores/:side.
func (s *Server) SelectStore(ctx echo.Context) error {
	flowID, side, err := flowAndSide(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body SelectStoreRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	storeID, err := kernel.UUIDFromString(body.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}
	managerID, err := kernel.UUIDFromString(body.ManagerID)
	if err != nil {
		return badRequest(ctx, "Invalid manager id")
	}

	cmd, err := commands.NewSelectStoreCommand(flowID, side, storeID, body.Department, managerID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.selectStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithFlow(ctx, http.StatusOK, flowID)
}

// ListManagers handles GET /api/v1/flows/:flowId/stores/:side/:storeId/departments/:department/managers.
func (s *Server) ListManagers(ctx echo.Context) error {
	flowID, side, err := flowAndSide(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}

	query, err := queries.NewListManagersQuery(flowID, side, storeID, ctx.Param("department"))
	if err != nil {
		return writeError(ctx, err)
	}

	managers, err := s.listManagersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Manager, len(managers))
	for i, m := range managers {
		response[i] = Manager{
			ID:           m.ID.String(),
			Name:         m.Name,
			Phone:        m.Phone,
			PhoneDisplay: m.PhoneDisplay,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EnterDetails handles PUT /api/v1/flows/:flowId/details.
func (s *Server) EnterDetails(ctx echo.Context) error {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return badRequest(ctx, "Invalid flow id")
	}

	var body DetailsRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEnterDetailsCommand(flowID, body.toInput())
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.enterDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithFlow(ctx, http.StatusOK, flowID)
}

// NavigateBack handles POST /api/v1/flows/:flowId/back.
func (s *Server) NavigateBack(ctx echo.Context) error {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return badRequest(ctx, "Invalid flow id")
	}

	var body NavigateBackRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewNavigateBackCommand(flowID, wizard.Step(body.Step))
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.navigateBackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithFlow(ctx, http.StatusOK, flowID)
}

// RestartFlow handles POST /api/v1/flows/:flowId/restart.
func (s *Server) RestartFlow(ctx echo.Context) error {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return badRequest(ctx, "Invalid flow id")
	}

	cmd, err := commands.NewRestartFlowCommand(flowID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.restartFlowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithFlow(ctx, http.StatusOK, flowID)
}

// Submit handles POST /api/v1/flows/:flowId/submit.
func (s *Server) Submit(ctx echo.Context) error {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return badRequest(ctx, "Invalid flow id")
	}

	cmd, err := commands.NewSubmitDeliveryRequestCommand(flowID, kernel.NewUUID())
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.submitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitResponse{
		RequestID:          res.RequestID.String(),
		Message:            res.Message,
		Payload:            res.Payload,
		OriginAddress:      toAddress(res.OriginAddress),
		DestinationAddress: toAddress(res.DestinationAddress),
	})
}

func (s *Server) respondWithFlow(ctx echo.Context, status int, flowID kernel.UUID) error {
	query, err := queries.NewGetFlowQuery(flowID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getFlowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toFlow(view))
}

func flowAndSide(ctx echo.Context) (kernel.UUID, services.Side, error) {
	flowID, err := kernel.UUIDFromString(ctx.Param("flowId"))
	if err != nil {
		return kernel.UUID{}, services.UnknownSide, errors.New("Invalid flow id")
	}
	side, err := services.ParseSide(ctx.Param("side"))
	if err != nil {
		return kernel.UUID{}, services.UnknownSide, fmt.Errorf("Invalid side %q", ctx.Param("side"))
	}
	return flowID, side, nil
}
