package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves active orders from the database.
// Filters out terminal orders to provide workload visibility.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	query := NewGetUncompletedOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted orders.
// Returns orders in any non-terminal status, oldest first.
// Converts database types to domain types for consistency.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			status,
			staff_id,
			total_amount_minor
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var staffID uuid.NullUUID
		var status int
		var totalMinor sql.NullInt64

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&orderResp.CustomerName,
			&status,
			&staffID,
			&totalMinor,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()

		if staffID.Valid {
			assigned, staffErr := kernel.UUIDFromBytes(staffID.UUID[:])
			if staffErr != nil {
				return nil, staffErr
			}
			orderResp.StaffID = &assigned
		}

		total, moneyErr := kernel.MoneyFromMinorUnits(totalMinor.Int64)
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.TotalAmount = total

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
