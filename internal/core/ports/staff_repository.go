// Package ports defines repository interfaces for the laundry domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
// Provides methods for storing, retrieving, and querying staff members
// with their complete state including the set of assigned orders.
//
// Update implementations must enforce optimistic concurrency: the write only
// succeeds when the stored version matches the aggregate's loaded version,
// otherwise errs.ErrConcurrentModification is returned.
type StaffRepository interface {
	// Add persists a new staff member to storage.
	// The member must be valid and not already exist in the repository.
	Add(ctx context.Context, member *staff.StaffMember) error

	// Update persists changes to an existing staff member and bumps their
	// version. Returns errs.ErrConcurrentModification when the stored version
	// no longer matches the aggregate's.
	Update(ctx context.Context, member *staff.StaffMember) error

	// Get retrieves a staff member by their unique identifier.
	// Returns the complete member with their current assignment set.
	Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error)

	// GetByOrder retrieves the staff member currently holding the given order,
	// or errs.ErrObjectNotFound when the order is unassigned.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*staff.StaffMember, error)

	// GetAll retrieves every staff member, ordered by name.
	GetAll(ctx context.Context) ([]*staff.StaffMember, error)
}
