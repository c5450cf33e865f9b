package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand represents a request to assign a specific staff member
// to an order. Reassignment is allowed: the previous holder is detached as
// part of the same transaction.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates a command to assign a staff member to an order.
// Validates that both identifiers are valid UUIDs.
func NewAssignStaffCommand(orderID kernel.UUID, staffID kernel.UUID) (AssignStaffCommand, error) {
	command := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStaffID(staffID),
	); err != nil {
		return AssignStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignStaffCommandIsNotConstructed if validation fails.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the identifier of the staff member taking the order.
func (c AssignStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *AssignStaffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
