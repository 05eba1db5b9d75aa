package commands

import (
	"errors"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/pkg/guard"
)

var (
	ErrOptimizeRouteCommandIsNotConstructed = errors.New(
		"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// OptimizeRouteCommand requests a sequenced delivery route for a set of
// orders leaving one warehouse.
type OptimizeRouteCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	orderIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand creates a command to sequence deliveries from a
// warehouse.
func NewOptimizeRouteCommand(warehouseID kernel.UUID, orderIDs []kernel.UUID) (OptimizeRouteCommand, error) {
	cmd := OptimizeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return OptimizeRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

// WarehouseID returns the route's origin warehouse.
func (c OptimizeRouteCommand) WarehouseID() kernel.UUID { return c.warehouseID }

// OrderIDs returns the orders to sequence.
func (c OptimizeRouteCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

func (c *OptimizeRouteCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *OptimizeRouteCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}
