package commands

import (
	"context"

	"logix/internal/core/domain/model/route"
	"logix/internal/core/ports"
)

// OptimizeRouteCommandHandler builds a route request from persisted orders
// and delegates sequencing to the route optimizer. The optimizer contract
// guarantees a complete result even when its primary path is down, so the
// handler never needs a fallback of its own.
type OptimizeRouteCommandHandler struct {
	uowFactory RoutingUoWFactory
	optimizer  ports.RouteOptimizer
}

// NewOptimizeRouteCommandHandler creates a handler for route optimization.
func NewOptimizeRouteCommandHandler(
	uowFactory RoutingUoWFactory,
	optimizer ports.RouteOptimizer,
) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		uowFactory: uowFactory,
		optimizer:  optimizer,
	}
}

// Handle loads the warehouse and orders, then sequences the stops.
func (h *OptimizeRouteCommandHandler) Handle(
	ctx context.Context,
	cmd OptimizeRouteCommand,
) (route.Result, error) {
	if err := cmd.Validate(); err != nil {
		return route.Result{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return route.Result{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	w, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID())
	if err != nil {
		return route.Result{}, err
	}

	stops := make([]route.Stop, 0, len(cmd.OrderIDs()))
	for _, orderID := range cmd.OrderIDs() {
		o, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return route.Result{}, err
		}

		stops = append(stops, route.Stop{
			OrderID:                   o.ID(),
			Address:                   o.DeliveryAddress(),
			Location:                  o.DeliveryLocation(),
			Window:                    o.DeliveryWindow(),
			Industry:                  o.Industry(),
			Priority:                  o.Priority(),
			RequiresExpeditedHandling: o.RequiresExpeditedHandling(),
			RequiresManualHandling:    o.RequiresManualHandling(),
		})
	}

	// Read-only use of the transaction; nothing to commit.
	return h.optimizer.Optimize(ctx, route.Request{
		Origin: w.Location(),
		Stops:  stops,
	})
}
