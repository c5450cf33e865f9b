package order

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrCustomerInfoIsNotConstructed is returned when using an improperly
// initialized CustomerInfo value.
var ErrCustomerInfoIsNotConstructed = errors.New(
	"CustomerInfo must be created via NewCustomerInfo constructor",
)

// CustomerInfo holds the customer's contact details. The workflow core treats
// these fields as opaque pass-through data: they are carried on the order and
// surfaced on invoices, but never interpreted. The email doubles as the
// customer identity used by the quality-review ownership check wired in the
// composition root.
type CustomerInfo struct {
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomerInfo creates customer contact details.
// Name and email are required; phone and address may be empty.
func NewCustomerInfo(name, email, phone, address string) (CustomerInfo, error) {
	if name == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("customer name")
	}
	if email == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("customer email")
	}

	return CustomerInfo{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the value was created through the constructor.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

// Name returns the customer's display name.
func (c CustomerInfo) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c CustomerInfo) Email() string {
	return c.email
}

// Phone returns the customer's phone number; may be empty.
func (c CustomerInfo) Phone() string {
	return c.phone
}

// Address returns the customer's pickup/delivery address; may be empty.
func (c CustomerInfo) Address() string {
	return c.address
}
