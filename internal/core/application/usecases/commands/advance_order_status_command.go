package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to its next
// workflow status, or to cancel it while cancellation is still allowed.
//
// Example:
//
//	cmd, err := NewAdvanceOrderStatusCommand(orderID, "order-accepted", "Confirmed by phone")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory, pricing)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // the requested status is not the immediate successor
//	case errors.Is(err, order.ErrTerminalState):
//	    // completed and cancelled orders never change again
//	case errors.Is(err, ErrStaffRequired):
//	    // washing cannot start on an unassigned order
//	}
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
// The target is given as its string form, e.g. "wash-in-progress" or
// "cancelled". The note is optional; when empty a default note is recorded in
// the order's status history. Notes longer than order.MaxNoteLength are
// rejected here, before any aggregate is loaded.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID, target string, note string) (AdvanceOrderStatusCommand, error) {
	command := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setNote(note),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the parsed target status.
func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

// Note returns the optional note to record in the status history.
func (c AdvanceOrderStatusCommand) Note() string {
	return c.note
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target string) error {
	parsed, err := order.StatusFromString(target)
	if err != nil {
		return err
	}

	c.target = parsed
	return nil
}

func (c *AdvanceOrderStatusCommand) setNote(note string) error {
	if len(note) > order.MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("note", len(note), 0, order.MaxNoteLength)
	}

	c.note = note
	return nil
}
