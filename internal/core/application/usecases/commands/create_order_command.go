package commands

import (
	"errors"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrItemsAreRequired          = errors.New("at least one item is required")
	ErrPayloadIsRequired         = errors.New("industry payload is required")
)

// CreateOrderCommand represents a request to register an incoming order from
// any intake channel. Carries the full industry classification and payload;
// the handler derives priority and the initial workflow status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	orderType        order.OrderType
	source           order.OrderSource
	items            []order.Item
	deliveryAddress  string
	deliveryLocation kernel.GeoPoint
	deliveryWindow   kernel.TimeWindow
	payload          order.Payload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an incoming order.
// Validates identity, classification, items, and destination; payload
// consistency with the order type is enforced later by the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.OrderType,
	source order.OrderSource,
	items []order.Item,
	deliveryAddress string,
	deliveryLocation kernel.GeoPoint,
	deliveryWindow kernel.TimeWindow,
	payload order.Payload,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryLocation: deliveryLocation,
		deliveryWindow:   deliveryWindow,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClassification(orderType, source),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPayload(payload),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OrderType returns the industry order type.
func (c CreateOrderCommand) OrderType() order.OrderType { return c.orderType }

// Source returns the intake channel.
func (c CreateOrderCommand) Source() order.OrderSource { return c.source }

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item { return c.items }

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// DeliveryLocation returns the destination coordinates.
func (c CreateOrderCommand) DeliveryLocation() kernel.GeoPoint { return c.deliveryLocation }

// DeliveryWindow returns the requested delivery window, zero if none.
func (c CreateOrderCommand) DeliveryWindow() kernel.TimeWindow { return c.deliveryWindow }

// Payload returns the industry-specific payload.
func (c CreateOrderCommand) Payload() order.Payload { return c.payload }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClassification(orderType order.OrderType, source order.OrderSource) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	if err := source.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	c.source = source
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPayload(payload order.Payload) error {
	if payload == nil {
		return ErrPayloadIsRequired
	}

	c.payload = payload
	return nil
}
