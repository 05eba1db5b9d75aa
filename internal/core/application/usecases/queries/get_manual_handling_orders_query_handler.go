package queries

import (
	"context"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetManualHandlingOrdersQueryHandler reads the manual handling work queue
// from the database. Orders arrive here when validation fails or no
// candidate warehouse or driver qualifies; a dispatcher clears them by hand.
type GetManualHandlingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetManualHandlingOrdersQueryHandler creates a handler for manual
// handling queue queries.
func NewGetManualHandlingOrdersQueryHandler(db *gorm.DB) GetManualHandlingOrdersQueryHandler {
	return GetManualHandlingOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns flagged orders oldest first.
func (h GetManualHandlingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetManualHandlingOrdersQuery,
) ([]GetManualHandlingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetManualHandlingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			priority,
			delivery_address,
			updated_at
		FROM orders
		WHERE requires_manual_handling
		ORDER BY updated_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetManualHandlingOrdersQueryResponse
		var id uuid.UUID
		var orderType, status, priority int

		err = rows.Scan(
			&id,
			&orderType,
			&status,
			&priority,
			&resp.DeliveryAddress,
			&resp.FlaggedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
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
