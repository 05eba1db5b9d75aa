package queries

import (
	"errors"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/pkg/guard"
)

var ErrGetUnfulfilledOrdersQueryIsNotConstructed = errors.New(
	"GetUnfulfilledOrdersQuery must be created via NewGetUnfulfilledOrdersQuery constructor",
)

// GetUnfulfilledOrdersQuery retrieves every order still moving through its
// workflow, giving operations a view of the active fulfillment workload.
type GetUnfulfilledOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfulfilledOrdersQuery creates a query to retrieve all non-terminal
// orders.
func NewGetUnfulfilledOrdersQuery() GetUnfulfilledOrdersQuery {
	return GetUnfulfilledOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnfulfilledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfulfilledOrdersQueryIsNotConstructed)
}

// GetUnfulfilledOrdersQueryResponse represents one in-flight order.
type GetUnfulfilledOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderType       order.OrderType
	Status          order.Status
	Priority        order.Priority
	DeliveryAddress string
	WarehouseID     *kernel.UUID
	DriverID        *kernel.UUID
}
