package services

import (
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
)

// StaffAssigner is a domain service that binds orders to staff members and
// keeps both sides of the relationship consistent: the order's assigned staff
// field and the staff member's set of assigned orders always agree after a
// successful call.
//
// Business rules:
//   - An order holds at most one staff member at a time; reassignment detaches
//     the previous member first
//   - Assigning the same member again is idempotent
//   - Orders in a terminal status cannot be assigned
type StaffAssigner struct{}

// NewStaffAssigner creates a new StaffAssigner instance.
func NewStaffAssigner() StaffAssigner {
	return StaffAssigner{}
}

// Assign binds the order to the given staff member.
//
// Parameters:
//   - o: The order to assign (must be valid and not terminal)
//   - member: The staff member taking the order
//   - previous: The member currently holding the order, or nil if unassigned;
//     the caller loads it so both aggregates can be persisted in one transaction
//   - now: Timestamp recorded on the order
//
// Returns:
//   - error: Validation error, or order.ErrOrderNotAssignable if the order is terminal
func (a StaffAssigner) Assign(o *order.Order, member *staff.StaffMember, previous *staff.StaffMember, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := member.Validate(); err != nil {
		return err
	}

	if err := o.AssignStaff(member.ID(), now); err != nil {
		return err
	}

	if previous != nil && !previous.IsEqual(member) {
		previous.UnassignOrder(o.ID())
	}

	return member.AssignOrder(o.ID())
}

// Detach releases the order from its current staff member. Detaching an
// unassigned order is a no-op. member may be nil when the holding aggregate
// could not be loaded; the order side is still cleared.
func (a StaffAssigner) Detach(o *order.Order, member *staff.StaffMember, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if member != nil {
		member.UnassignOrder(o.ID())
	}

	o.DetachStaff(now)
	return nil
}
