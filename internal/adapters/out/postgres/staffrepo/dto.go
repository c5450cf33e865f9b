// Package staffrepo provides data transfer objects and mapping functions for staff persistence.
// This package implements the repository pattern for the staff domain aggregate, handling
// the conversion between domain entities and database representations.
package staffrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffMemberDTO represents the database structure for persisting staff aggregates.
// Maps staff domain entities to relational database tables with the assignment
// set in a child table keyed by the staff member id.
type StaffMemberDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Role        int             `gorm:"type:int;not null"`
	Version     int             `gorm:"type:int;not null;default:1"`
	Assignments []AssignmentDTO `gorm:"foreignKey:StaffMemberID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for staff entities.
// Overrides GORM's default naming convention to use "staff_members".
func (StaffMemberDTO) TableName() string {
	return "staff_members"
}

// AssignmentDTO represents one order currently held by a staff member.
type AssignmentDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	StaffMemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "staff_assignments"
}

// fromDomain converts a staff domain aggregate to its database representation.
// Maps the member's attributes and their current assignment set.
func fromDomain(member *staff.StaffMember) StaffMemberDTO {
	memberID := member.ID().Bytes()

	assignments := make([]AssignmentDTO, 0, member.AssignedCount())
	for _, orderID := range member.AssignedOrderIDs() {
		assignments = append(assignments, AssignmentDTO{
			StaffMemberID: memberID,
			OrderID:       orderID.Bytes(),
		})
	}

	return StaffMemberDTO{
		ID:          memberID,
		Name:        member.Name(),
		Role:        int(member.Role()),
		Version:     member.Version(),
		Assignments: assignments,
	}
}

// toDomain converts a database DTO to a staff domain aggregate.
// Reconstructs the complete aggregate including the assignment set using RestoreStaffMember.
func toDomain(dto StaffMemberDTO) (*staff.StaffMember, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedOrderIDs := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, assignment := range dto.Assignments {
		orderID, orderErr := kernel.UUIDFromBytes(assignment.OrderID[:])
		if orderErr != nil {
			return nil, orderErr
		}
		assignedOrderIDs = append(assignedOrderIDs, orderID)
	}

	return staff.RestoreStaffMember(id, dto.Name, staff.Role(dto.Role), assignedOrderIDs, dto.Version)
}
