package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// PricingPolicy carries the billing parameters applied when pricing an order.
// TaxRate is a fraction, e.g. 0.10 for 10%. Discount is a flat amount
// subtracted after tax; use kernel.ZeroMoney() when no discount applies.
type PricingPolicy struct {
	TaxRate  decimal.Decimal
	Discount kernel.Money
}

// Validate checks the policy parameters.
func (p PricingPolicy) Validate() error {
	if p.TaxRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("taxRate", fmt.Errorf("%s is negative", p.TaxRate))
	}
	return p.Discount.Validate()
}

// InvoiceLine is one priced row of an invoice.
type InvoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

// Invoice is the priced breakdown of an order. All amounts are exact currency
// values; tax is rounded to cents, half away from zero.
type Invoice struct {
	Lines    []InvoiceLine
	Subtotal kernel.Money
	TaxRate  decimal.Decimal
	Tax      kernel.Money
	Discount kernel.Money
	Total    kernel.Money
}

// InvoiceCalculator is a domain service that prices orders. It is a pure
// calculation: the same order and policy always produce the same invoice,
// and the order is never mutated.
//
// Calculation rules:
//   - Line total = unit price x quantity
//   - Subtotal = sum of line totals
//   - Tax = subtotal x tax rate, rounded to cents half away from zero
//   - Total = subtotal + tax - discount, never below zero
type InvoiceCalculator struct{}

// NewInvoiceCalculator creates a new InvoiceCalculator instance.
func NewInvoiceCalculator() InvoiceCalculator {
	return InvoiceCalculator{}
}

// Calculate prices the given order under the given policy.
//
// Parameters:
//   - o: The order to price (must be valid)
//   - policy: Tax rate and discount to apply
//
// Returns:
//   - Invoice: The priced breakdown
//   - error: Validation error if the order or policy is invalid
func (c InvoiceCalculator) Calculate(o *order.Order, policy PricingPolicy) (Invoice, error) {
	if err := o.Validate(); err != nil {
		return Invoice{}, err
	}

	return c.CalculateItems(o.Items(), policy)
}

// CalculateItems prices a bare item list under the given policy. Used by read
// models that reconstruct items without the full order aggregate.
func (c InvoiceCalculator) CalculateItems(items []*order.Item, policy PricingPolicy) (Invoice, error) {
	if err := policy.Validate(); err != nil {
		return Invoice{}, err
	}

	lines := make([]InvoiceLine, 0, len(items))
	subtotal := kernel.ZeroMoney()

	for _, item := range items {
		lineTotal := item.UnitPrice().MulInt(item.Quantity())
		subtotal = subtotal.Add(lineTotal)

		lines = append(lines, InvoiceLine{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: lineTotal,
		})
	}

	tax, err := kernel.MoneyFromDecimal(subtotal.Decimal().Mul(policy.TaxRate))
	if err != nil {
		return Invoice{}, err
	}

	return Invoice{
		Lines:    lines,
		Subtotal: subtotal,
		TaxRate:  policy.TaxRate,
		Tax:      tax,
		Discount: policy.Discount,
		Total:    subtotal.Add(tax).SubtractOrZero(policy.Discount),
	}, nil
}
