package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotAssignable is the sentinel for assignment attempts on orders
	// in a terminal state. Cancelled and completed orders keep their last
	// assignment as part of the audit record and accept no new one.
	ErrOrderNotAssignable = errors.New("order does not accept staff assignment")
)

// OrderNotAssignableError indicates a staff assignment was attempted on an
// order whose status forbids it.
type OrderNotAssignableError struct {
	Status Status
}

// Error formats the error message with the offending status.
func (e *OrderNotAssignableError) Error() string {
	return fmt.Sprintf("%s: order is %s", ErrOrderNotAssignable, e.Status)
}

// Unwrap returns the sentinel so errors.Is(err, ErrOrderNotAssignable) matches.
func (e *OrderNotAssignableError) Unwrap() error {
	return ErrOrderNotAssignable
}

// Order represents a laundry service order. It is the aggregate root that
// manages the order lifecycle from placement through the fulfillment workflow
// (pickup, wash, quality review, delivery) to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must have at least one item after creation
//   - Status transitions follow the fixed forward sequence defined by Status
//   - Status history is append-only and chronological
//   - totalAmount always equals the invoice calculator's total for the current
//     item list; callers refresh it after every item mutation
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Orders are never deleted; a
// cancelled order remains a permanent, auditable record.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable unique number, immutable after creation
	orderNumber string

	// customer holds opaque customer contact details
	customer CustomerInfo

	// items are the order lines; non-empty after creation
	items []*Item

	// status is the current state in the fulfillment workflow
	status Status

	// history is the append-only audit trail of accepted transitions
	history []StatusEvent

	// staffID is the assigned staff member's ID (nil if unassigned)
	staffID *kernel.UUID

	// totalAmount is the derived invoice total for the current item list
	totalAmount kernel.Money

	// version is the optimistic concurrency token, incremented on every write
	version int

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. This is the only way to create
// a fresh order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNumber: Human-readable unique number (must be non-empty)
//   - customer: Validated customer contact details
//   - items: Order lines (must be non-empty, each valid)
//   - now: Creation timestamp, recorded in the first status event
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The new order starts in OrderPlaced status with a creation event in its
// history, no staff assigned, and a zero total. Callers are expected to refresh
// the total from the invoice calculator before persisting (façade rule).
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer CustomerInfo,
	items []*Item,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:      OrderPlaced,
		totalAmount: kernel.ZeroMoney(),
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	placedEvent, err := NewStatusEvent(OrderPlaced, "Order placed", now)
	if err != nil {
		return nil, err
	}
	order.history = []StatusEvent{placedEvent}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, this constructor restores an order to its previously
// persisted state, including status history, staff assignment, derived total,
// and concurrency version. The restored order behaves identically to one
// created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer CustomerInfo,
	items []*Item,
	status Status,
	history []StatusEvent,
	staffID *kernel.UUID,
	totalAmount kernel.Money,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		history:   history,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setItems(items),
		order.setStatus(status),
		order.setTotalAmount(totalAmount),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return nil, err
		}
		order.staffID = staffID
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the customer contact details.
func (o *Order) Customer() CustomerInfo {
	return o.customer
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the order line at the given index, or an out-of-range error.
func (o *Order) Item(index int) (*Item, error) {
	if index < 0 || index >= len(o.items) {
		return nil, errs.NewValueIsOutOfRangeError("itemIndex", index, 0, len(o.items)-1)
	}
	return o.items[index], nil
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns the append-only status history in chronological order.
func (o *Order) History() []StatusEvent {
	return o.history
}

// Staff returns the assigned staff member's ID.
// Returns nil if no staff member is assigned.
func (o *Order) Staff() *kernel.UUID {
	return o.staffID
}

// TotalAmount returns the derived invoice total for the current item list.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Version returns the optimistic concurrency token.
// Storage adapters compare-and-set on this value; a stale version fails the
// write instead of silently overwriting a competing change.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance applies a status transition to the order.
//
// The target must be the immediate successor of the current status in the
// fixed forward sequence, or Cancelled while the cancellation window is open.
// On success a StatusEvent is appended to the history and updatedAt is set;
// on failure no mutation occurs (atomic apply-or-reject).
//
// The note is cosmetic: when empty, a default of the form
// "Status updated to <status>" is synthesized. It never affects the
// transition decision.
//
// Returns:
//   - nil on success
//   - *TerminalStateError when the order is completed or cancelled
//   - *InvalidTransitionError when the target is not reachable
//
// Advance deliberately touches nothing but the status fields: staff
// assignment and item quality stay untouched even for statuses that gate
// those sub-workflows. The façade layer enforces the cross-component rules.
func (o *Order) Advance(target Status, note string, now time.Time) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	event, err := NewStatusEvent(newStatus, note, now)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, event)
	o.updatedAt = now
	return nil
}

// AssignStaff assigns the order to a staff member.
//
// The order must not be in a terminal state. Reassignment is allowed; keeping
// the staff member's assigned-order set consistent with this field is the
// responsibility of the staff assignment service, which sequences detach and
// attach across both aggregates.
func (o *Order) AssignStaff(staffID kernel.UUID, now time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return &OrderNotAssignableError{Status: o.status}
	}

	o.staffID = &staffID
	o.updatedAt = now
	return nil
}

// DetachStaff removes the staff assignment. Always succeeds; detaching an
// unassigned order is a no-op.
func (o *Order) DetachStaff(now time.Time) {
	if o.staffID == nil {
		return
	}

	o.staffID = nil
	o.updatedAt = now
}

// ApproveItem marks the item at the given index as quality-approved.
// Fails with *InvalidQualityStateError unless the item is pending.
// Gating on the order having reached wash-completed is a façade rule.
func (o *Order) ApproveItem(index int, now time.Time) error {
	item, err := o.Item(index)
	if err != nil {
		return err
	}

	if err := item.approve(index); err != nil {
		return err
	}

	o.updatedAt = now
	return nil
}

// RequestItemRewash marks the item at the given index for reprocessing.
// Fails with *InvalidQualityStateError unless the item is pending, or with
// *MissingReasonError when the reason is blank.
func (o *Order) RequestItemRewash(index int, reason string, now time.Time) error {
	item, err := o.Item(index)
	if err != nil {
		return err
	}

	if err := item.requestRewash(index, reason); err != nil {
		return err
	}

	o.updatedAt = now
	return nil
}

// RefreshTotal replaces the derived total with a freshly computed invoice
// total. The façade calls this after every mutation so that totalAmount and
// the invoice calculator's output never diverge.
func (o *Order) RefreshTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	o.totalAmount = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(customer CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalAmount(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalAmount = total
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError(
			"version",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}
	o.version = version
	return nil
}
