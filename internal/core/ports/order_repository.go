// Package ports defines repository and adapter interfaces for the fulfillment
// automation domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingAutomation retrieves orders still waiting for an automation
	// run: pending status, no driver, and not yet flagged for manual handling.
	// The automation sweep job feeds on this.
	GetAllPendingAutomation(ctx context.Context, limit int) ([]*order.Order, error)

	// GetAllRequiringManualHandling retrieves orders automation gave up on,
	// oldest first. Backs the operator work queue.
	GetAllRequiringManualHandling(ctx context.Context) ([]*order.Order, error)
}
