package staff

import (
	"errors"
	"fmt"
	"sort"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Domain errors for staff operations.
var (
	// ErrNameIsRequired is returned when attempting to create a staff member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStaffMemberIsNotConstructed is returned when using an improperly initialized StaffMember.
	ErrStaffMemberIsNotConstructed = errors.New("StaffMember must be created via NewStaffMember constructor")
)

// Role represents the job function of a staff member.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDelivery marks staff who pick up and deliver orders.
	RoleDelivery

	// RoleTechnician marks staff who operate the wash process.
	RoleTechnician
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleDelivery:   "delivery",
		RoleTechnician: "technician",
	}
}

// RoleFromString parses a role from its string representation, e.g. "technician".
func RoleFromString(value string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == value {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", value),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleDelivery && r != RoleTechnician {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the machine-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// StaffMember represents a worker who fulfills orders. It is an aggregate root
// that manages staff identity and the set of orders currently assigned to them.
//
// Business rules:
//   - Staff must have a valid UUID, non-empty name, and valid role
//   - assignedOrderIDs has set semantics: assigning the same order twice never
//     duplicates the entry
//   - The set must stay bidirectionally consistent with each order's assigned
//     staff field; the staff assignment service sequences both sides
type StaffMember struct {
	// id uniquely identifies the staff member
	id kernel.UUID
	// name is the human-readable name of the staff member
	name string
	// role is the staff member's job function
	role Role
	// assignedOrderIDs is the set of orders currently assigned to this member
	assignedOrderIDs map[kernel.UUID]struct{}
	// version is the optimistic concurrency token, incremented on every write
	version int
	// guard ensures the staff member was properly constructed
	guard guard.ConstructorGuard
}

// NewStaffMember creates a new StaffMember with the specified parameters.
// This is the only way to create a valid StaffMember with an empty assignment set.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - role: Job function (must be a valid role)
//
// Returns:
//   - *StaffMember: A fully initialized staff member with no assignments
//   - error: Validation error if any parameter is invalid
func NewStaffMember(id kernel.UUID, name string, role Role) (*StaffMember, error) {
	member := &StaffMember{
		assignedOrderIDs: make(map[kernel.UUID]struct{}),
		version:          1,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setRole(role),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreStaffMember reconstructs a StaffMember aggregate from persistent
// storage, including the set of orders assigned at the time of persistence
// and the concurrency version the row was loaded with.
// Duplicate IDs in the input collapse into the set.
func RestoreStaffMember(
	id kernel.UUID,
	name string,
	role Role,
	assignedOrderIDs []kernel.UUID,
	version int,
) (*StaffMember, error) {
	member, err := NewStaffMember(id, name, role)
	if err != nil {
		return nil, err
	}

	if err := member.setVersion(version); err != nil {
		return nil, err
	}

	for _, orderID := range assignedOrderIDs {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
		member.assignedOrderIDs[orderID] = struct{}{}
	}

	return member, nil
}

// Validate checks if the StaffMember was properly constructed.
// The zero value of StaffMember is invalid and will fail this validation.
func (s *StaffMember) Validate() error {
	if s == nil {
		return ErrStaffMemberIsNotConstructed
	}
	return s.guard.Validate(ErrStaffMemberIsNotConstructed)
}

// IsEqual compares two staff members for equality based on their unique identifiers.
func (s *StaffMember) IsEqual(other *StaffMember) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// ID returns the unique identifier of the staff member.
func (s *StaffMember) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable name of the staff member.
func (s *StaffMember) Name() string {
	return s.name
}

// Role returns the staff member's job function.
func (s *StaffMember) Role() Role {
	return s.role
}

// AssignOrder adds an order to the staff member's assignment set.
// Assigning an already-assigned order is a no-op (set semantics), so repeated
// assignment never duplicates the entry.
func (s *StaffMember) AssignOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.assignedOrderIDs[orderID] = struct{}{}
	return nil
}

// UnassignOrder removes an order from the assignment set.
// Removing an order that is not assigned is a no-op.
func (s *StaffMember) UnassignOrder(orderID kernel.UUID) {
	delete(s.assignedOrderIDs, orderID)
}

// IsAssignedTo reports whether the given order is in the assignment set.
func (s *StaffMember) IsAssignedTo(orderID kernel.UUID) bool {
	_, ok := s.assignedOrderIDs[orderID]
	return ok
}

// AssignedOrderIDs returns the assignment set as a slice, sorted by string
// representation for deterministic iteration and serialization.
func (s *StaffMember) AssignedOrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(s.assignedOrderIDs))
	for id := range s.assignedOrderIDs {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// AssignedCount returns the number of orders currently assigned.
// Used by the dispatcher to pick the least-loaded staff member.
func (s *StaffMember) AssignedCount() int {
	return len(s.assignedOrderIDs)
}

// Version returns the optimistic concurrency token.
// Storage adapters compare-and-set on this value; a stale version fails the
// write instead of silently dropping a competing assignment change.
func (s *StaffMember) Version() int {
	return s.version
}

func (s *StaffMember) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StaffMember) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *StaffMember) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func (s *StaffMember) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError(
			"version",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}
	s.version = version
	return nil
}
