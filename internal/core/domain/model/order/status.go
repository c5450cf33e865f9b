package order

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine over a fixed forward sequence of fulfillment
// steps plus one exceptional absorbing state for cancellation.
//
// State transitions:
//
//	order-placed(1) -> order-accepted(2) -> out-for-pickup(3) -> pickup-completed(4)
//	  -> wash-in-progress(5) -> wash-completed(6) -> out-for-delivery(7)
//	  -> delivery-completed(8) -> completed(9)
//
//	cancelled is reachable only while step < 4 and absorbs all further transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. The forward sequence is
// defined once here; every other component references it, so the step table
// cannot drift between consumers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// OrderPlaced is the initial status when a customer places an order.
	OrderPlaced

	// OrderAccepted indicates the order has been accepted by the service.
	OrderAccepted

	// OutForPickup indicates a staff member is on the way to collect the items.
	OutForPickup

	// PickupCompleted indicates the items have been collected from the customer.
	// From this step onward the order can no longer be cancelled.
	PickupCompleted

	// WashInProgress indicates the items are being processed.
	// Entering this status requires an assigned staff member (façade rule).
	WashInProgress

	// WashCompleted indicates processing has finished.
	// Per-item quality review becomes available from this step onward.
	WashCompleted

	// OutForDelivery indicates the items are on the way back to the customer.
	OutForDelivery

	// DeliveryCompleted indicates the items have been handed back to the customer.
	DeliveryCompleted

	// Completed indicates the order is fully settled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled is the absorbing terminal state for orders aborted before pickup.
	// Distinct from Completed; a cancelled order remains a permanent audit record.
	Cancelled
)

// cancellationCutoffStep is the first step from which cancellation is no
// longer possible. Orders can be cancelled only while their step is below it.
const cancellationCutoffStep = 4

// Transition errors for the order status state machine.
var (
	// ErrInvalidTransition is the sentinel for transitions that skip steps
	// or request cancellation outside the cancellation window.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTerminalState is the sentinel for any transition attempted from
	// Completed or Cancelled.
	ErrTerminalState = errors.New("order is in a terminal state")
)

// InvalidTransitionError indicates that the requested target status is not the
// immediate successor of the current status and not a valid cancellation.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// Error formats the error message with both endpoints of the rejected transition.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel so errors.Is(err, ErrInvalidTransition) matches.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateError indicates a transition was attempted from a terminal status.
type TerminalStateError struct {
	Status Status
}

// Error formats the error message with the terminal status.
func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s admits no further transitions", ErrTerminalState, e.Status)
}

// Unwrap returns the sentinel so errors.Is(err, ErrTerminalState) matches.
func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		OrderPlaced:       "order-placed",
		OrderAccepted:     "order-accepted",
		OutForPickup:      "out-for-pickup",
		PickupCompleted:   "pickup-completed",
		WashInProgress:    "wash-in-progress",
		WashCompleted:     "wash-completed",
		OutForDelivery:    "out-for-delivery",
		DeliveryCompleted: "delivery-completed",
		Completed:         "completed",
		Cancelled:         "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// StatusFromString parses a status from its string representation,
// e.g. "wash-in-progress". Used when reconstructing statuses from transport
// or persistence boundaries.
//
// Returns:
//   - the matching Status on success
//   - error if the string does not name a valid status
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the machine-readable name of the status, e.g. "order-placed".
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Step returns the numeric position of the status in the fixed forward
// sequence (1 for OrderPlaced through 9 for Completed). Cancelled and Unknown
// are not part of the forward sequence and return 0.
func (s Status) Step() int {
	if s >= OrderPlaced && s <= Completed {
		return int(s)
	}
	return 0
}

// IsTerminal reports whether the status admits no further transitions.
// Completed and Cancelled are distinct terminal states.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanCancel reports whether cancellation is still possible from this status.
// The cancellation window closes once the items have been picked up (step >= 4).
func (s Status) CanCancel() bool {
	step := s.Step()
	return step > 0 && step < cancellationCutoffStep
}

// Advance validates a transition to the target status and returns the new status.
//
// Valid transitions:
//   - the immediate successor step in the forward sequence
//   - Cancelled, while the current step is below the cancellation cutoff
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, *TerminalStateError) when the current status is terminal
//   - (Unknown, *InvalidTransitionError) for any other rejected transition
//
// This method is used by Order.Advance to enforce state transitions.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, &TerminalStateError{Status: s}
	}

	if target == Cancelled {
		if !s.CanCancel() {
			return Unknown, &InvalidTransitionError{From: s, To: target}
		}
		return Cancelled, nil
	}

	if target.Step() != s.Step()+1 {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}

	return target, nil
}
