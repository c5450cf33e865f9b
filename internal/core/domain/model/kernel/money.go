package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyExponent is the number of decimal places carried by the currency.
// All amounts are stored as integer minor units (e.g. cents, paise).
const moneyExponent = 2

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. The zero value of Money is invalid.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromMinorUnits, or MoneyFromDecimal",
)

// Money is a value object representing a non-negative monetary amount.
// It stores the amount as integer minor units to keep arithmetic exact;
// binary floating point is never used, so repeated computation over the same
// inputs always yields identical results.
//
// Money is immutable. Arithmetic methods return new values and never mutate
// the receiver. Construct Money through NewMoney, MoneyFromMinorUnits, or
// MoneyFromDecimal; the zero value fails Validate.
//
// Example usage:
//
//	price, err := kernel.NewMoney(25, 0) // 25.00
//	if err != nil {
//	    // handle error
//	}
//	line := price.MulInt(3) // 75.00
type Money struct {
	// amountMinor is the amount in minor units (e.g. 2550 means 25.50)
	amountMinor int64

	// guard ensures the value was created via a constructor
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from major and minor currency units.
// The minor part must be within [0, 99]; the major part must be non-negative.
//
// Example:
//
//	m, err := kernel.NewMoney(115, 50) // 115.50
func NewMoney(major int64, minor int64) (Money, error) {
	if major < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", major),
		)
	}
	if minor < 0 || minor >= 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("minor", minor, 0, 99)
	}

	return Money{
		amountMinor: major*100 + minor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromMinorUnits creates a Money value from an amount in minor units.
// Negative amounts are rejected; amounts in this domain are never negative,
// subtraction that would go below zero is clamped by SubtractOrZero.
func MoneyFromMinorUnits(amountMinor int64) (Money, error) {
	if amountMinor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d minor units is negative", amountMinor),
		)
	}

	return Money{
		amountMinor: amountMinor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromDecimal creates a Money value from a decimal amount.
// The amount is rounded half away from zero to the currency exponent before
// conversion, so "10.505" becomes 10.51.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return MoneyFromMinorUnits(amount.Round(moneyExponent).Shift(moneyExponent).IntPart())
}

// ZeroMoney returns a properly constructed zero amount.
// Use it as the seed for summation.
func ZeroMoney() Money {
	return Money{
		amountMinor: 0,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate checks that the Money value was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// MinorUnits returns the amount in integer minor units.
func (m Money) MinorUnits() int64 {
	return m.amountMinor
}

// Decimal returns the amount as an exact decimal in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amountMinor, -moneyExponent)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amountMinor: m.amountMinor + other.amountMinor,
		guard:       guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used for line subtotals where the factor is an item quantity.
func (m Money) MulInt(factor int) Money {
	return Money{
		amountMinor: m.amountMinor * int64(factor),
		guard:       guard.NewConstructorGuard(),
	}
}

// SubtractOrZero returns the difference floored at zero.
// A subtrahend larger than the receiver yields a zero amount, never a negative one.
func (m Money) SubtractOrZero(other Money) Money {
	result := m.amountMinor - other.amountMinor
	if result < 0 {
		result = 0
	}

	return Money{
		amountMinor: result,
		guard:       guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amountMinor == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amountMinor == other.amountMinor
}

// String returns the display representation in major units with the full
// currency exponent, e.g. "115.50". Display conversion happens only here,
// at the boundary; internal math stays in minor units.
func (m Money) String() string {
	return m.Decimal().StringFixed(moneyExponent)
}
