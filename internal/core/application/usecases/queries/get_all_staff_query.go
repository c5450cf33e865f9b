package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetAllStaffQueryIsNotConstructed = errors.New(
	"GetAllStaffQuery must be created via NewGetAllStaffQuery constructor",
)

// GetAllStaffQuery retrieves the full staff roster with current workloads.
//
// Example:
//
//	query := NewGetAllStaffQuery()
//	handler := NewGetAllStaffQueryHandler(db)
//
//	roster, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get staff roster: %w", err)
//	}
type GetAllStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllStaffQuery creates a query to retrieve the staff roster.
func NewGetAllStaffQuery() GetAllStaffQuery {
	return GetAllStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllStaffQueryIsNotConstructed if validation fails.
func (q GetAllStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStaffQueryIsNotConstructed)
}

// GetAllStaffQueryResponse represents one staff member on the roster,
// including how many orders they currently hold.
type GetAllStaffQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Role           string
	AssignedOrders int
}
