package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// DetachStaffCommandHandler orchestrates releasing an order from its staff member.
// Both sides of the relationship are cleared and persisted in one transaction.
type DetachStaffCommandHandler struct {
	uowFactory UoWFactory
}

// NewDetachStaffCommandHandler creates a handler for staff detachment operations.
func NewDetachStaffCommandHandler(uowFactory UoWFactory) DetachStaffCommandHandler {
	return DetachStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff detachment command.
// Detaching an order with no assigned staff member is a successful no-op.
// Returns ErrOrderNotFound when the order does not exist.
func (h DetachStaffCommandHandler) Handle(ctx context.Context, cmd DetachStaffCommand) error {
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

	if aggregate.Staff() == nil {
		return nil
	}

	var member *staff.StaffMember
	member, err = staffRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = services.NewStaffAssigner().Detach(aggregate, member, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if member != nil {
		if err = staffRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
