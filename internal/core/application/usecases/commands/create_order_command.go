package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired   = errors.New("order number is required")
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrItemsAreRequired        = errors.New("at least one item is required")
)

// OrderItemInput describes one line of a new order: the garment name, how many
// pieces, and the unit price in minor currency units (cents).
type OrderItemInput struct {
	Name           string
	Quantity       int
	UnitPriceMinor int64
}

// CreateOrderCommand represents a request to register a new laundry order.
// Encapsulates the customer contact details and the items to be washed.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []OrderItemInput{{Name: "Shirt", Quantity: 3, UnitPriceMinor: 2500}}
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-1001",
//	    "John Doe", "john@example.com", "+15550100", "12 Main St", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderNumber     string
	customerName    string
	customerEmail   string
	customerPhone   string
	customerAddress string
	items           []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates that the order ID is valid, the order number, customer name, and
// email are not empty, and at least one item is present. Item contents are
// validated by the order aggregate when the command is handled.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerName string,
	customerEmail string,
	customerPhone string,
	customerAddress string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderNumber(orderNumber),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the customer's email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the customer's phone number, which may be empty.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the pickup and delivery address, which may be empty.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(email string) error {
	if email == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}
