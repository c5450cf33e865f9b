package order

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// Quality review errors for order items.
var (
	// ErrInvalidQualityState is the sentinel for review calls on items that
	// are no longer pending. Quality review is one-shot per item.
	ErrInvalidQualityState = errors.New("item quality state does not allow this operation")

	// ErrMissingReason is the sentinel for rewash requests without a reason.
	ErrMissingReason = errors.New("rewash reason is required")

	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// InvalidQualityStateError indicates a quality operation on an item that has
// already been reviewed. Only pending items can be approved or sent to rewash.
type InvalidQualityStateError struct {
	ItemIndex int
	Status    QualityStatus
}

// Error formats the error message with the offending item and its current state.
func (e *InvalidQualityStateError) Error() string {
	return fmt.Sprintf("%s: item %d is %s", ErrInvalidQualityState, e.ItemIndex, e.Status)
}

// Unwrap returns the sentinel so errors.Is(err, ErrInvalidQualityState) matches.
func (e *InvalidQualityStateError) Unwrap() error {
	return ErrInvalidQualityState
}

// MissingReasonError indicates a rewash request arrived without a reason.
type MissingReasonError struct {
	ItemIndex int
}

// Error formats the error message with the offending item index.
func (e *MissingReasonError) Error() string {
	return fmt.Sprintf("%s: item %d", ErrMissingReason, e.ItemIndex)
}

// Unwrap returns the sentinel so errors.Is(err, ErrMissingReason) matches.
func (e *MissingReasonError) Unwrap() error {
	return ErrMissingReason
}

// QualityStatus represents the per-item approval state.
// It is intentionally not part of the order status machine: an order can be
// delivery-completed while individual items are still pending review. The two
// state machines are orthogonal and live in separate fields.
type QualityStatus int

const (
	// QualityUnknown represents an invalid or undefined quality status.
	QualityUnknown QualityStatus = iota

	// QualityPending is the default state; the item awaits customer review.
	QualityPending

	// QualityApproved indicates the customer accepted the item's quality.
	QualityApproved

	// QualityRewash indicates the customer requested reprocessing.
	// A rewash always carries a reason.
	QualityRewash
)

// getQualityStatusStrings returns a map of QualityStatus values to their
// string representations.
func getQualityStatusStrings() map[QualityStatus]string {
	return map[QualityStatus]string{
		QualityUnknown:  "unknown",
		QualityPending:  "pending",
		QualityApproved: "approved",
		QualityRewash:   "rewash",
	}
}

// QualityStatusFromString parses a quality status from its string
// representation, e.g. "approved".
func QualityStatusFromString(value string) (QualityStatus, error) {
	for status, str := range getQualityStatusStrings() {
		if status != QualityUnknown && str == value {
			return status, nil
		}
	}

	return QualityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"qualityStatus",
		fmt.Errorf("%q is not a valid quality status", value),
	)
}

// Validate checks if the QualityStatus value is valid.
func (s QualityStatus) Validate() error {
	if s < QualityPending || s > QualityRewash {
		return errs.NewValueIsInvalidErrorWithCause(
			"qualityStatus",
			fmt.Errorf("%d is not a valid quality status", s),
		)
	}
	return nil
}

// String returns the machine-readable name of the quality status.
func (s QualityStatus) String() string {
	if str, ok := getQualityStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MaxItemQuantity is the most identical articles one order line can carry.
// Keeps line subtotals far away from int64 overflow in minor-unit arithmetic.
const MaxItemQuantity = 10_000

// Item is a single line of an order: a named garment or article with a
// quantity, a unit price, and its own quality review state.
//
// Invariants:
//   - quantity is an integer in [1, MaxItemQuantity]
//   - unit price is a non-negative Money amount
//   - rewashReason is set if and only if qualityStatus is QualityRewash
type Item struct {
	// name identifies the garment or article, e.g. "Shirt"
	name string

	// quantity is the number of identical articles on this line
	quantity int

	// unitPrice is the price per article in minor units
	unitPrice kernel.Money

	// qualityStatus is the per-item review state, independent of order status
	qualityStatus QualityStatus

	// rewashReason explains a rewash request; empty otherwise
	rewashReason string

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates an order item in the pending quality state.
// Name must be non-empty, quantity must be within [1, MaxItemQuantity], and
// the unit price must be a properly constructed Money value.
func NewItem(name string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		qualityStatus: QualityPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistent storage, including its
// quality review state. The rewash reason must be present exactly when the
// quality status is QualityRewash.
func RestoreItem(
	name string,
	quantity int,
	unitPrice kernel.Money,
	qualityStatus QualityStatus,
	rewashReason string,
) (*Item, error) {
	item, err := NewItem(name, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err := qualityStatus.Validate(); err != nil {
		return nil, err
	}
	if qualityStatus == QualityRewash && strings.TrimSpace(rewashReason) == "" {
		return nil, errs.NewValueIsRequiredError("rewashReason")
	}
	if qualityStatus != QualityRewash && rewashReason != "" {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rewashReason",
			fmt.Errorf("reason is only allowed for %s items", QualityRewash),
		)
	}

	item.qualityStatus = qualityStatus
	item.rewashReason = rewashReason
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the article name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the number of articles on this line.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per article.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// QualityStatus returns the current per-item review state.
func (i *Item) QualityStatus() QualityStatus {
	return i.qualityStatus
}

// RewashReason returns the reason attached to a rewash request,
// or the empty string when the item is not in the rewash state.
func (i *Item) RewashReason() string {
	return i.rewashReason
}

// approve marks a pending item as accepted and clears any stale rewash reason.
// Approval is one-shot: items already approved or in rewash cannot be
// re-approved through this path.
func (i *Item) approve(index int) error {
	if i.qualityStatus != QualityPending {
		return &InvalidQualityStateError{ItemIndex: index, Status: i.qualityStatus}
	}

	i.qualityStatus = QualityApproved
	i.rewashReason = ""
	return nil
}

// requestRewash marks a pending item for reprocessing with the given reason.
// The reason must be non-empty after trimming whitespace.
func (i *Item) requestRewash(index int, reason string) error {
	if i.qualityStatus != QualityPending {
		return &InvalidQualityStateError{ItemIndex: index, Status: i.qualityStatus}
	}
	if strings.TrimSpace(reason) == "" {
		return &MissingReasonError{ItemIndex: index}
	}

	i.qualityStatus = QualityRewash
	i.rewashReason = reason
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
