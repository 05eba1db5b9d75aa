package commands

import (
	"errors"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/pkg/guard"
)

var ErrProcessNewOrderCommandIsNotConstructed = errors.New(
	"ProcessNewOrderCommand must be created via NewProcessNewOrderCommand constructor",
)

// ProcessNewOrderCommand requests one automation attempt for an order.
type ProcessNewOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessNewOrderCommand creates a command to run automation for an order.
func NewProcessNewOrderCommand(orderID kernel.UUID) (ProcessNewOrderCommand, error) {
	cmd := ProcessNewOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ProcessNewOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessNewOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessNewOrderCommandIsNotConstructed)
}

// OrderID returns the order to automate.
func (c ProcessNewOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProcessNewOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
