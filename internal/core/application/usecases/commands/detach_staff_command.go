package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDetachStaffCommandIsNotConstructed = errors.New(
	"DetachStaffCommand must be created via NewDetachStaffCommand constructor",
)

// DetachStaffCommand represents a request to release an order from its
// currently assigned staff member. Detaching an unassigned order succeeds
// without changes.
type DetachStaffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDetachStaffCommand creates a command to detach an order from its staff member.
func NewDetachStaffCommand(orderID kernel.UUID) (DetachStaffCommand, error) {
	command := DetachStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DetachStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDetachStaffCommandIsNotConstructed if validation fails.
func (c DetachStaffCommand) Validate() error {
	return c.guard.Validate(ErrDetachStaffCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to detach.
func (c DetachStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DetachStaffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
