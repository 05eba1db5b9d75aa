package queries

import (
	"context"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfulfilledOrdersQueryHandler retrieves orders that have not reached a
// terminal status. Whether a status is terminal depends on the order type's
// workflow, so the per-type check runs over the workflow table in Go after a
// coarse SQL cut on the statuses terminal for every type.
type GetUnfulfilledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfulfilledOrdersQueryHandler creates a handler for unfulfilled
// order queries.
func NewGetUnfulfilledOrdersQueryHandler(db *gorm.DB) GetUnfulfilledOrdersQueryHandler {
	return GetUnfulfilledOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time so the
// oldest work surfaces first.
func (h GetUnfulfilledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfulfilledOrdersQuery,
) ([]GetUnfulfilledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetUnfulfilledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			priority,
			delivery_address,
			warehouse_id,
			driver_id
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, int(order.StatusCancelled), int(order.StatusReturned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnfulfilledOrdersQueryResponse
		var id uuid.UUID
		var warehouseID, driverID *uuid.UUID
		var orderType, status, priority int

		err = rows.Scan(
			&id,
			&orderType,
			&status,
			&priority,
			&resp.DeliveryAddress,
			&warehouseID,
			&driverID,
		)
		if err != nil {
			return nil, err
		}

		if order.IsTerminal(order.OrderType(orderType), order.Status(status)) {
			continue
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if warehouseID != nil {
			wID, wErr := kernel.UUIDFromBytes((*warehouseID)[:])
			if wErr != nil {
				return nil, wErr
			}
			resp.WarehouseID = &wID
		}
		if driverID != nil {
			dID, dErr := kernel.UUIDFromBytes((*driverID)[:])
			if dErr != nil {
				return nil, dErr
			}
			resp.DriverID = &dID
		}

		resp.OrderType = order.OrderType(orderType)
		resp.Status = order.Status(status)
		resp.Priority = order.Priority(priority)
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
