// Package staff implements the StaffMember aggregate root: the workers who
// pick up, wash, and deliver orders. A staff member carries the set of orders
// currently assigned to them; the set has strict set semantics and is kept
// bidirectionally consistent with each order's assigned-staff field by the
// staff assignment domain service.
package staff
