// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregate layer and read optimized models straight from
// the database.
package queries

import (
	"errors"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/pkg/guard"
)

var ErrGetManualHandlingOrdersQueryIsNotConstructed = errors.New(
	"GetManualHandlingOrdersQuery must be created via NewGetManualHandlingOrdersQuery constructor",
)

// GetManualHandlingOrdersQuery retrieves orders automation gave up on. The
// result backs the operator work queue, oldest flag first so nothing
// starves.
type GetManualHandlingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetManualHandlingOrdersQuery creates a query to retrieve the manual
// handling work queue. Parameterless; the queue is always read whole.
func NewGetManualHandlingOrdersQuery() GetManualHandlingOrdersQuery {
	return GetManualHandlingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetManualHandlingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetManualHandlingOrdersQueryIsNotConstructed)
}

// GetManualHandlingOrdersQueryResponse represents one order awaiting a
// human dispatcher.
type GetManualHandlingOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderType       order.OrderType
	Status          order.Status
	Priority        order.Priority
	DeliveryAddress string
	FlaggedAt       time.Time
}
