package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
//
// Update implementations must enforce optimistic concurrency: the write only
// succeeds when the stored version matches the aggregate's loaded version,
// otherwise errs.ErrConcurrentModification is returned.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and bumps its
	// version. Returns errs.ErrConcurrentModification when the stored version
	// no longer matches the aggregate's.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with items, status history, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstUnassigned retrieves the oldest accepted, non-terminal order
	// without an assigned staff member. Orders still in the placed status are
	// not candidates. Used by the auto-assignment workflow.
	GetFirstUnassigned(ctx context.Context) (*order.Order, error)

	// GetAllUncompleted retrieves all orders that have not reached a terminal
	// status, oldest first.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)
}
