package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

var (
	ErrAutoAssignStaffCommandIsNotConstructed = errors.New(
		"AutoAssignStaffCommand must be created via NewAutoAssignStaffCommand constructor",
	)
	// ErrNoOrderFound is returned when no unassigned order is waiting.
	ErrNoOrderFound = errors.New("no order found")
	// ErrNoAvailableStaffFound is returned when the staff roster is empty.
	ErrNoAvailableStaffFound = errors.New("no available staff found")
)

// AutoAssignStaffCommandHandler orchestrates the automatic assignment process.
// Finds the oldest unassigned order and matches it with the least-loaded staff
// member. Ensures transactional consistency when updating both aggregates.
//
// Example:
//
//	handler := NewAutoAssignStaffCommandHandler(uowFactory)
//	cmd := NewAutoAssignStaffCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No unassigned orders")
//	case errors.Is(err, ErrNoAvailableStaffFound):
//	    log.Println("No staff registered")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Staff assigned successfully")
//	}
type AutoAssignStaffCommandHandler struct {
	uowFactory UoWFactory
}

// NewAutoAssignStaffCommandHandler creates a handler for automatic assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAutoAssignStaffCommandHandler(uowFactory UoWFactory) AutoAssignStaffCommandHandler {
	return AutoAssignStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the automatic assignment command.
// Retrieves the oldest unassigned order, loads the staff roster, and uses
// StaffDispatcher to pick the least-loaded member. Updates both aggregates
// within a single transaction. Returns specific errors for no orders
// (ErrNoOrderFound) or no staff (ErrNoAvailableStaffFound).
func (h AutoAssignStaffCommandHandler) Handle(ctx context.Context, command AutoAssignStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()
	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.GetFirstUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	members, err := staffRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return ErrNoAvailableStaffFound
	}

	assigned, err := services.NewStaffDispatcher().Dispatch(aggregate, members, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = staffRepo.Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
