package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
		"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
	)
)

// GetUncompletedOrdersQuery retrieves all orders still moving through the
// workflow. Completed and cancelled orders are excluded.
//
// Example:
//
//	query := NewGetUncompletedOrdersQuery()
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("Found %d active orders\n", len(orders))
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve active orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedOrdersQueryIsNotConstructed if validation fails.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse represents one active order.
// Contains the data needed for workload dashboards: who the order belongs to,
// where it stands in the workflow, and who is working on it.
type GetUncompletedOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerName string
	Status       string
	StaffID      *kernel.UUID
	TotalAmount  kernel.Money
}
