package commands

import (
	"context"
	"strings"

	"logix/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order intake: it builds the aggregate in
// its workflow's initial status and derives the starting priority from the
// industry payload.
//
// Priority rules:
//   - e-commerce: VIP and loyal customer segments are promoted to high
//   - retail: URGENT or EXPEDITED delivery terms promote accordingly
//   - food delivery: always high, the product melts
//   - manufacturing: always high, production lines wait on it
//   - 3PL: derived from the SLA tightness
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command and persists the new order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderType(),
		cmd.Source(),
		cmd.Items(),
		cmd.DeliveryAddress(),
		cmd.DeliveryLocation(),
		cmd.DeliveryWindow(),
		cmd.Payload(),
	)
	if err != nil {
		return err
	}

	if err = o.SetPriority(derivePriority(o)); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func derivePriority(o *order.Order) order.Priority {
	switch p := o.Payload().(type) {
	case order.EcommercePayload:
		segment := strings.ToLower(p.CustomerSegment)
		if segment == "vip" || segment == "loyal" {
			return order.PriorityHigh
		}

	case order.RetailPayload:
		terms := strings.ToUpper(p.DeliveryTerms)
		if strings.Contains(terms, "URGENT") {
			return order.PriorityUrgent
		}
		if strings.Contains(terms, "EXPEDITED") {
			return order.PriorityHigh
		}

	case order.FoodDeliveryPayload:
		return order.PriorityHigh

	case order.ManufacturingPayload:
		return order.PriorityHigh

	case order.ThirdPartyPayload:
		if p.SLADeliveryMinutes > 0 {
			switch {
			case p.SLADeliveryMinutes < 4*60:
				return order.PriorityUrgent
			case p.SLADeliveryMinutes < 24*60:
				return order.PriorityHigh
			}
		}
	}

	return order.PriorityNormal
}
