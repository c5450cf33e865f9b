package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// ErrStaffMemberNotFound is returned when the command references a staff member that does not exist.
var ErrStaffMemberNotFound = errors.New("staff member not found")

// AssignStaffCommandHandler orchestrates manual staff assignment.
// Loads the order, the target staff member, and the previous holder (if any),
// rebinds the relationship through the StaffAssigner domain service, and
// persists all touched aggregates within a single transaction.
type AssignStaffCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignStaffCommandHandler creates a handler for manual staff assignment.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignStaffCommandHandler(uowFactory UoWFactory) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff assignment command.
// Returns ErrOrderNotFound or ErrStaffMemberNotFound when a referenced
// aggregate does not exist, and order.ErrOrderNotAssignable when the order is
// in a terminal status.
func (h AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staffRepo := uow.StaffRepository()

	aggregate, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	member, err := staffRepo.Get(ctx, cmd.StaffID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrStaffMemberNotFound
	}
	if err != nil {
		return err
	}

	var previous *staff.StaffMember
	if aggregate.Staff() != nil {
		previous, err = staffRepo.GetByOrder(ctx, aggregate.ID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = services.NewStaffAssigner().Assign(aggregate, member, previous, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = staffRepo.Update(ctx, member); err != nil {
		return err
	}

	if previous != nil && !previous.IsEqual(member) {
		if err = staffRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
