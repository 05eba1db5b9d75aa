package order

import (
	"errors"
	"fmt"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/pkg/errs"
	"logix/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order carries no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")

	// ErrPayloadIsRequired is returned when no industry payload was supplied.
	ErrPayloadIsRequired = errs.NewValueIsRequiredError("payload")

	// ErrPayloadCategoryMismatch is returned when the payload's category tag does
	// not equal the industry category derived from the order type.
	ErrPayloadCategoryMismatch = errors.New("payload category must match the order's industry category")

	// ErrInvalidTransition is returned when a requested status change is not an
	// edge of the order type's workflow.
	ErrInvalidTransition = errors.New("status transition is not allowed for this order type")

	// ErrWarehouseNotAssigned is returned when a driver assignment is attempted
	// before the order has a fulfillment warehouse.
	ErrWarehouseNotAssigned = errors.New("order cannot take a driver before a warehouse is assigned")
)

// Item is a single order line: a stock keeping unit and how many of it.
type Item struct {
	SKU      string
	Quantity int
}

// Validate checks the line has a SKU and a positive quantity.
func (i Item) Validate() error {
	if i.SKU == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity),
		)
	}
	return nil
}

// Order is the aggregate root for a customer order moving through the
// fulfillment automation engine. It arrives already classified by industry
// category, order type, and source, and is mutated only through the
// status-transition and assignment methods below.
//
// Invariants:
//   - must have a valid unique identifier, at least one valid item, a
//     delivery address, and exactly one industry payload whose category
//     equals the category derived from the order type
//   - status changes follow the order type's workflow table
//   - a driver can only be assigned after a warehouse
//   - orders are never deleted; they end in a terminal status
type Order struct {
	id       kernel.UUID
	industry IndustryCategory

	orderType OrderType
	source    OrderSource
	status    Status
	priority  Priority

	items            []Item
	deliveryAddress  string
	deliveryLocation kernel.GeoPoint
	deliveryWindow   kernel.TimeWindow
	payload          Payload

	warehouseID *kernel.UUID
	driverID    *kernel.UUID

	fulfillmentEstimate       time.Duration
	requiresExpeditedHandling bool
	requiresManualHandling    bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in the initial status of its order type's
// workflow. The industry category is derived from the order type; the payload
// tag must match it.
//
// Validation failures are joined, so a caller sees every constructor problem
// at once.
func NewOrder(
	id kernel.UUID,
	orderType OrderType,
	source OrderSource,
	items []Item,
	deliveryAddress string,
	deliveryLocation kernel.GeoPoint,
	deliveryWindow kernel.TimeWindow,
	payload Payload,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		priority:  PriorityNormal,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClassification(orderType, source),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPayload(payload),
	); err != nil {
		return nil, err
	}

	o.deliveryLocation = deliveryLocation
	o.deliveryWindow = deliveryWindow
	o.status = InitialStatus(orderType)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, assignments, and flags. The restored order behaves
// identically to one built through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	orderType OrderType,
	source OrderSource,
	status Status,
	priority Priority,
	items []Item,
	deliveryAddress string,
	deliveryLocation kernel.GeoPoint,
	deliveryWindow kernel.TimeWindow,
	payload Payload,
	warehouseID *kernel.UUID,
	driverID *kernel.UUID,
	fulfillmentEstimate time.Duration,
	requiresExpeditedHandling bool,
	requiresManualHandling bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClassification(orderType, source),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPayload(payload),
		status.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.priority = priority
	o.deliveryLocation = deliveryLocation
	o.deliveryWindow = deliveryWindow
	o.warehouseID = warehouseID
	o.driverID = driverID
	o.fulfillmentEstimate = fulfillmentEstimate
	o.requiresExpeditedHandling = requiresExpeditedHandling
	o.requiresManualHandling = requiresManualHandling
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order was built through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Industry returns the industry category derived from the order type.
func (o *Order) Industry() IndustryCategory { return o.industry }

// Type returns the order type.
func (o *Order) Type() OrderType { return o.orderType }

// Source returns the intake channel.
func (o *Order) Source() OrderSource { return o.source }

// Status returns the current workflow status.
func (o *Order) Status() Status { return o.status }

// Priority returns the current priority.
func (o *Order) Priority() Priority { return o.priority }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryAddress returns the human-readable destination address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DeliveryLocation returns the destination coordinates.
func (o *Order) DeliveryLocation() kernel.GeoPoint { return o.deliveryLocation }

// DeliveryWindow returns the requested delivery window (zero if none).
func (o *Order) DeliveryWindow() kernel.TimeWindow { return o.deliveryWindow }

// Payload returns the industry-specific payload.
func (o *Order) Payload() Payload { return o.payload }

// Warehouse returns the assigned warehouse id, nil when unrouted.
func (o *Order) Warehouse() *kernel.UUID { return o.warehouseID }

// Driver returns the assigned driver id, nil when unassigned.
func (o *Order) Driver() *kernel.UUID { return o.driverID }

// FulfillmentEstimate returns the estimate attached during automation
// (zero before the orchestrator ran).
func (o *Order) FulfillmentEstimate() time.Duration { return o.fulfillmentEstimate }

// RequiresExpeditedHandling reports whether the fulfillment estimate
// exceeded its industry cap.
func (o *Order) RequiresExpeditedHandling() bool { return o.requiresExpeditedHandling }

// RequiresManualHandling reports whether automation gave up on this order.
func (o *Order) RequiresManualHandling() bool { return o.requiresManualHandling }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Load returns the total item quantity, the unit used against driver and
// warehouse capacity.
func (o *Order) Load() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity
	}
	return total
}

// IsTerminal reports whether the order reached the end of its lifecycle.
func (o *Order) IsTerminal() bool {
	return IsTerminal(o.orderType, o.status)
}

// ChangeStatus moves the order to a new status, enforcing the order type's
// workflow table. Invalid moves return an error wrapping ErrInvalidTransition
// and leave the order untouched.
func (o *Order) ChangeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if !ValidTransition(o.orderType, o.status, to) {
		return fmt.Errorf("%w: %s -> %s (%s)", ErrInvalidTransition, o.status, to, o.orderType)
	}

	o.status = to
	o.touch()
	return nil
}

// AssignWarehouse records the fulfillment warehouse chosen by the router.
func (o *Order) AssignWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	if o.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal, warehouse cannot be assigned", o.status),
		)
	}

	o.warehouseID = &warehouseID
	o.touch()
	return nil
}

// AssignDriver records the driver chosen by the assigner. A warehouse must be
// assigned first.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.warehouseID == nil {
		return ErrWarehouseNotAssigned
	}

	o.driverID = &driverID
	o.touch()
	return nil
}

// InitializeWorkflow attaches the fulfillment estimate and resets the status
// to the workflow's initial status when the order has not progressed yet.
// Orders already past the initial status keep their position, which makes
// re-running automation safe.
func (o *Order) InitializeWorkflow(estimate time.Duration) {
	if o.status == StatusUnknown || o.status == InitialStatus(o.orderType) {
		o.status = InitialStatus(o.orderType)
	}
	o.fulfillmentEstimate = estimate
	o.touch()
}

// SetPriority raises or lowers the order priority.
func (o *Order) SetPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.priority = p
	o.touch()
	return nil
}

// FlagExpeditedHandling marks the order as exceeding its industry's
// fulfillment time cap. The flag is sticky.
func (o *Order) FlagExpeditedHandling() {
	o.requiresExpeditedHandling = true
	o.touch()
}

// RequireManualHandling marks the order for a human operator after
// incomplete automation. The flag is sticky.
func (o *Order) RequireManualHandling() {
	o.requiresManualHandling = true
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClassification(orderType OrderType, source OrderSource) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	if err := source.Validate(); err != nil {
		return err
	}

	o.orderType = orderType
	o.industry = orderType.Category()
	o.source = source
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPayload(p Payload) error {
	if p == nil {
		return ErrPayloadIsRequired
	}
	if o.orderType != OrderTypeUnknown && p.Category() != o.orderType.Category() {
		return fmt.Errorf("%w: payload is %s, order type %s is %s",
			ErrPayloadCategoryMismatch, p.Category(), o.orderType, o.orderType.Category())
	}

	o.payload = p
	return nil
}
