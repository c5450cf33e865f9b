package commands

// AutoAssignStaffCommand represents a request to automatically assign the
// oldest unassigned order to the least-loaded staff member. Carries no
// parameters: the handler discovers the work itself.
type AutoAssignStaffCommand struct {
	isSet bool
}

// NewAutoAssignStaffCommand creates a command to trigger automatic staff assignment.
func NewAutoAssignStaffCommand() AutoAssignStaffCommand {
	return AutoAssignStaffCommand{isSet: true}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignStaffCommandIsNotConstructed if validation fails.
func (c AutoAssignStaffCommand) Validate() error {
	if !c.isSet {
		return ErrAutoAssignStaffCommandIsNotConstructed
	}
	return nil
}
