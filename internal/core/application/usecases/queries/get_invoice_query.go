package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery retrieves the invoice document for a single order.
//
// Example:
//
//	query, err := NewGetInvoiceQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetInvoiceQueryHandler(db, pricing, company)
//	invoice, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetInvoiceQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query to retrieve an order's invoice.
// Validates that the order ID is a valid UUID.
func NewGetInvoiceQuery(orderID kernel.UUID) (GetInvoiceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}

	return GetInvoiceQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoiceQueryIsNotConstructed if validation fails.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to invoice.
func (q GetInvoiceQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CompanyInfo identifies the laundry service on printed invoices.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// GetInvoiceQueryLineResponse is one priced row of the invoice document.
type GetInvoiceQueryLineResponse struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

// GetInvoiceQueryResponse is the complete invoice document for an order:
// company and customer details plus the priced breakdown.
type GetInvoiceQueryResponse struct {
	OrderID         kernel.UUID
	OrderNumber     string
	Company         CompanyInfo
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Lines           []GetInvoiceQueryLineResponse
	Subtotal        kernel.Money
	TaxRate         decimal.Decimal
	Tax             kernel.Money
	Discount        kernel.Money
	Total           kernel.Money
}
