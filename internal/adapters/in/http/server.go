// Package http exposes the pickup wizard as a JSON API on echo.
package http

import (
	"net/http"

	"storecourier/internal/core/application/usecases/commands"
	"storecourier/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server maps HTTP requests onto the wizard's command and query handlers.
type Server struct {
	// Command handlers
	startFlowHandler          commands.StartFlowCommandHandler
	chooseDeliveryTypeHandler commands.ChooseDeliveryTypeCommandHandler
	selectStoreHandler        commands.SelectStoreCommandHandler
	enterDetailsHandler       commands.EnterDetailsCommandHandler
	navigateBackHandler       commands.NavigateBackCommandHandler
	restartFlowHandler        commands.RestartFlowCommandHandler
	submitHandler             commands.SubmitDeliveryRequestCommandHandler

	// Query handlers
	getFlowHandler               queries.GetFlowQueryHandler
	searchStoresHandler          queries.SearchStoresQueryHandler
	listManagersHandler          queries.ListManagersQueryHandler
	listSubmittedRequestsHandler queries.ListSubmittedRequestsQueryHandler
}

// Handlers groups the constructor arguments of NewServer.
type Handlers struct {
	StartFlow             commands.StartFlowCommandHandler
	ChooseDeliveryType    commands.ChooseDeliveryTypeCommandHandler
	SelectStore           commands.SelectStoreCommandHandler
	EnterDetails          commands.EnterDetailsCommandHandler
	NavigateBack          commands.NavigateBackCommandHandler
	RestartFlow           commands.RestartFlowCommandHandler
	Submit                commands.SubmitDeliveryRequestCommandHandler
	GetFlow               queries.GetFlowQueryHandler
	SearchStores          queries.SearchStoresQueryHandler
	ListManagers          queries.ListManagersQueryHandler
	ListSubmittedRequests queries.ListSubmittedRequestsQueryHandler
}

func NewServer(h Handlers) *Server {
	return &Server{
		startFlowHandler:             h.StartFlow,
		chooseDeliveryTypeHandler:    h.ChooseDeliveryType,
		selectStoreHandler:           h.SelectStore,
		enterDetailsHandler:          h.EnterDetails,
		navigateBackHandler:          h.NavigateBack,
		restartFlowHandler:           h.RestartFlow,
		submitHandler:                h.Submit,
		getFlowHandler:               h.GetFlow,
		searchStoresHandler:          h.SearchStores,
		listManagersHandler:          h.ListManagers,
		listSubmittedRequestsHandler: h.ListSubmittedRequests,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/flows", s.StartFlow)
	api.GET("/flows/:flowId", s.GetFlow)
	api.POST("/flows/:flowId/type", s.ChooseDeliveryType)
	api.GET("/flows/:flowId/stores/:side", s.SearchStores)
	api.POST("/flows/:flowId/stores/:side", s.SelectStore)
	api.GET("/flows/:flowId/stores/:side/:storeId/departments/:department/managers", s.ListManagers)
	api.PUT("/flows/:flowId/details", s.EnterDetails)
	api.POST("/flows/:flowId/back", s.NavigateBack)
	api.POST("/flows/:flowId/restart", s.RestartFlow)
	api.POST("/flows/:flowId/submit", s.Submit)

	api.GET("/requests", s.ListSubmittedRequests)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
