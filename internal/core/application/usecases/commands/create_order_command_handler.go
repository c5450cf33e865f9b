package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in "order-placed" status with the total amount priced
// from the items and the configured pricing policy.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing)
//	cmd, _ := NewCreateOrderCommand(orderID, "ORD-1001",
//	    "John Doe", "john@example.com", "", "", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now placed and ready for staff assignment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the pricing
// policy used to compute the order total.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricing services.PricingPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order creation command.
// Builds the customer info and items, creates the order in "order-placed"
// status, prices it, and persists it within a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomerInfo(
		cmd.CustomerName(), cmd.CustomerEmail(), cmd.CustomerPhone(), cmd.CustomerAddress(),
	)
	if err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		price, err := kernel.MoneyFromMinorUnits(input.UnitPriceMinor)
		if err != nil {
			return err
		}

		item, err := order.NewItem(input.Name, input.Quantity, price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.OrderNumber(), customer, items, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = refreshOrderTotal(newOrder, h.pricing); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// refreshOrderTotal reprices the order and stores the invoice total on the
// aggregate. Called after every change that can affect pricing so the stored
// total never goes stale.
func refreshOrderTotal(o *order.Order, pricing services.PricingPolicy) error {
	invoice, err := services.NewInvoiceCalculator().Calculate(o, pricing)
	if err != nil {
		return err
	}

	return o.RefreshTotal(invoice.Total)
}
