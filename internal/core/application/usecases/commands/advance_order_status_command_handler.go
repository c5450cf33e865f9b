package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderNotFound is returned when the command targets an order that does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStaffRequired is returned when washing is started on an order with no assigned staff.
	ErrStaffRequired = errors.New("order has no assigned staff")
)

// AdvanceOrderStatusCommandHandler orchestrates order status transitions.
// The order aggregate enforces the step-by-step workflow and the cancellation
// window; the handler adds the cross-aggregate rule that washing cannot start
// before a staff member is assigned.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingPolicy
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status transition operations.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingPolicy,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the status transition command.
// Loads the order, applies the transition atomically (the order is left
// untouched when the transition is rejected), reprices it, and persists it.
// Returns ErrOrderNotFound when the order does not exist and ErrStaffRequired
// when moving to wash-in-progress without an assigned staff member.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	aggregate, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Target() == order.WashInProgress && aggregate.Staff() == nil {
		return ErrStaffRequired
	}

	if err = aggregate.Advance(cmd.Target(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = refreshOrderTotal(aggregate, h.pricing); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// loadOrder fetches the order aggregate, mapping the repository's not-found
// error to the command-level ErrOrderNotFound sentinel.
func loadOrder(ctx context.Context, repo ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	aggregate, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}
