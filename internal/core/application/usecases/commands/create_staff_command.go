package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateStaffCommandIsNotConstructed = errors.New(
		"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
	)
	ErrStaffNameIsRequired = errors.New("staff name is required")
)

// CreateStaffCommand represents a request to register a new staff member.
//
// Example:
//
//	staffID := kernel.NewUUID()
//	cmd, err := NewCreateStaffCommand(staffID, "Alice Kim", "technician")
//	if err != nil {
//	    return fmt.Errorf("invalid staff data: %w", err)
//	}
//
//	handler := NewCreateStaffCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create staff member: %w", err)
//	}
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	name    string
	role    staff.Role

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a new staff member.
// Validates that the staff ID is valid, the name is not empty, and the role
// string parses to a known role ("delivery" or "technician").
func NewCreateStaffCommand(staffID kernel.UUID, name string, role string) (CreateStaffCommand, error) {
	staffCommand := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staffCommand.setStaffID(staffID),
		staffCommand.setName(name),
		staffCommand.setRole(role),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return staffCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStaffCommandIsNotConstructed if validation fails.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// StaffID returns the unique identifier for the staff member.
func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Name returns the staff member's name.
func (c CreateStaffCommand) Name() string {
	return c.name
}

// Role returns the parsed staff role.
func (c CreateStaffCommand) Role() staff.Role {
	return c.role
}

func (c *CreateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	if name == "" {
		return ErrStaffNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStaffCommand) setRole(role string) error {
	parsed, err := staff.RoleFromString(role)
	if err != nil {
		return err
	}

	c.role = parsed
	return nil
}
