package services

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
)

// ErrStaffNotFound is returned when no suitable staff member is available for
// order dispatch. This occurs when either no staff are provided or every
// candidate fails validation.
var ErrStaffNotFound = errors.New("staff not found")

// StaffDispatcher is a domain service responsible for finding and assigning
// the optimal staff member for an order based on current workload.
//
// Business rules:
//   - Orders must be valid before dispatch
//   - Selection prioritizes the member with the fewest assigned orders
//   - First candidate wins in case of ties
//   - Order assignment is atomic: selection and binding happen together
type StaffDispatcher struct {
	assigner StaffAssigner
}

// NewStaffDispatcher creates a new StaffDispatcher instance.
func NewStaffDispatcher() StaffDispatcher {
	return StaffDispatcher{assigner: NewStaffAssigner()}
}

// Dispatch finds the least-loaded staff member and assigns the order to them.
//
// Parameters:
//   - o: The order to be dispatched (must be valid and unassigned)
//   - members: Slice of available staff members to consider
//   - now: Timestamp recorded on the order
//
// Returns:
//   - *staff.StaffMember: The member assigned to the order
//   - error: ErrStaffNotFound if no candidate exists, or validation/assignment errors
func (d StaffDispatcher) Dispatch(o *order.Order, members []*staff.StaffMember, now time.Time) (*staff.StaffMember, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findLeastLoaded(members)
	if err != nil {
		return nil, err
	}

	if err := d.assigner.Assign(o, best, nil, now); err != nil {
		return nil, err
	}

	return best, nil
}

func (d StaffDispatcher) findLeastLoaded(members []*staff.StaffMember) (*staff.StaffMember, error) {
	var best *staff.StaffMember

	for _, m := range members {
		if err := m.Validate(); err != nil {
			return nil, err
		}

		if best == nil || m.AssignedCount() < best.AssignedCount() {
			best = m
		}
	}

	if best == nil {
		return nil, ErrStaffNotFound
	}

	return best, nil
}
