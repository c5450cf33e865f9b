package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllStaffQueryHandler retrieves the staff roster from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllStaffQueryHandler struct {
	db *gorm.DB
}

// NewGetAllStaffQueryHandler creates a handler for staff roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllStaffQueryHandler(db *gorm.DB) GetAllStaffQueryHandler {
	return GetAllStaffQueryHandler{db: db}
}

// Handle executes the query to retrieve all staff members.
// Returns a slice of staff read models sorted by name, each with the count of
// orders currently assigned to them.
func (h GetAllStaffQueryHandler) Handle(
	ctx context.Context,
	query GetAllStaffQuery,
) ([]GetAllStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster := make([]GetAllStaffQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.role,
			COUNT(a.order_id) AS assigned_orders
		FROM staff_members s
		LEFT JOIN staff_assignments a ON a.staff_member_id = s.id
		GROUP BY s.id, s.name, s.role
		ORDER BY s.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member GetAllStaffQueryResponse
		var id uuid.UUID
		var role int

		err = rows.Scan(
			&id,
			&member.Name,
			&role,
			&member.AssignedOrders,
		)
		if err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		member.ID = memberID
		member.Role = staff.Role(role).String()

		roster = append(roster, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
