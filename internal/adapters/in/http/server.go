// Package http exposes the fulfillment engine over a JSON API. Handlers
// translate wire DTOs into commands and queries and map domain errors onto
// HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"

	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/application/usecases/queries"
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	processNewOrderHandler   commands.ProcessNewOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	optimizeRouteHandler     commands.OptimizeRouteCommandHandler

	getManualHandlingOrdersHandler queries.GetManualHandlingOrdersQueryHandler
	getUnfulfilledOrdersHandler    queries.GetUnfulfilledOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	processNewOrderHandler commands.ProcessNewOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	optimizeRouteHandler commands.OptimizeRouteCommandHandler,
	getManualHandlingOrdersHandler queries.GetManualHandlingOrdersQueryHandler,
	getUnfulfilledOrdersHandler queries.GetUnfulfilledOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		processNewOrderHandler:         processNewOrderHandler,
		changeOrderStatusHandler:       changeOrderStatusHandler,
		optimizeRouteHandler:           optimizeRouteHandler,
		getManualHandlingOrdersHandler: getManualHandlingOrdersHandler,
		getUnfulfilledOrdersHandler:    getUnfulfilledOrdersHandler,
	}
}

// RegisterRoutes attaches the API to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/process", s.ProcessOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/routes/optimize", s.OptimizeRoute)
	api.GET("/orders/manual-handling", s.GetManualHandlingOrders)
	api.GET("/orders/unfulfilled", s.GetUnfulfilledOrders)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers an externally
// classified order for automation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.OrderTypeFromString(req.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order type: "+req.OrderType)
	}

	source, err := order.OrderSourceFromString(req.Source)
	if err != nil {
		return badRequest(ctx, "Invalid order source: "+req.Source)
	}

	location, err := kernel.NewGeoPoint(req.DeliveryLocation.Lat, req.DeliveryLocation.Lon)
	if err != nil {
		return badRequest(ctx, "Invalid delivery location: "+err.Error())
	}

	window, err := windowFromBounds(req.WindowStart, req.WindowEnd)
	if err != nil {
		return badRequest(ctx, "Invalid delivery window: "+err.Error())
	}

	payload, err := toPayload(orderType, req.Payload)
	if err != nil {
		return badRequest(ctx, "Invalid payload: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, orderType, source, toItems(req.Items),
		req.DeliveryAddress, location, window, payload,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedResponse{ID: orderID.String()})
}

// ProcessOrder handles POST /api/v1/orders/:id/process - runs one automation
// attempt and returns the decision, including manual-handling outcomes.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewProcessNewOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	decision, err := s.processNewOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDecisionResponse(decision))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// along its workflow.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req changeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OptimizeRoute handles POST /api/v1/routes/optimize - sequences delivery
// stops for a set of orders departing from one warehouse.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	var req optimizeRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewOptimizeRouteCommand(warehouseID, orderIDs)
	if err != nil {
		return badRequest(ctx, "Invalid optimization request: "+err.Error())
	}

	result, err := s.optimizeRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRouteResultResponse(result))
}

// GetManualHandlingOrders handles GET /api/v1/orders/manual-handling.
func (s *Server) GetManualHandlingOrders(ctx echo.Context) error {
	query := queries.NewGetManualHandlingOrdersQuery()

	rows, err := s.getManualHandlingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve manual handling orders")
	}

	return ctx.JSON(http.StatusOK, toManualHandlingResponse(rows))
}

// GetUnfulfilledOrders handles GET /api/v1/orders/unfulfilled.
func (s *Server) GetUnfulfilledOrders(ctx echo.Context) error {
	query := queries.NewGetUnfulfilledOrdersQuery()

	rows, err := s.getUnfulfilledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve unfulfilled orders")
	}

	return ctx.JSON(http.StatusOK, toUnfulfilledResponse(rows))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps errors crossing the application boundary onto status codes.
func domainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Request failed: "+err.Error())
	}
}
