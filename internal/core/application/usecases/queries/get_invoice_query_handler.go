package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler builds the invoice document for an order.
// Reads the order header and items directly from the database and prices them
// through the invoice calculator, so the read side and the write side always
// agree on amounts.
type GetInvoiceQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingPolicy
	company CompanyInfo
}

// NewGetInvoiceQueryHandler creates a handler for invoice queries.
// Requires a GORM database connection, the pricing policy, and the company
// details printed on invoices.
func NewGetInvoiceQueryHandler(
	db *gorm.DB,
	pricing services.PricingPolicy,
	company CompanyInfo,
) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db, pricing: pricing, company: company}
}

// Handle executes the query to build the invoice document.
// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	response := GetInvoiceQueryResponse{Company: h.company}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_email,
			customer_address
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	err := row.Scan(
		&id,
		&response.OrderNumber,
		&response.CustomerName,
		&response.CustomerEmail,
		&response.CustomerAddress,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetInvoiceQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	response.OrderID = orderID

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	invoice, err := services.NewInvoiceCalculator().CalculateItems(items, h.pricing)
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	response.Lines = make([]GetInvoiceQueryLineResponse, 0, len(invoice.Lines))
	for _, line := range invoice.Lines {
		response.Lines = append(response.Lines, GetInvoiceQueryLineResponse{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	response.Subtotal = invoice.Subtotal
	response.TaxRate = invoice.TaxRate
	response.Tax = invoice.Tax
	response.Discount = invoice.Discount
	response.Total = invoice.Total

	return response, nil
}

func (h GetInvoiceQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			quantity,
			unit_price_minor,
			quality_status,
			rewash_reason
		FROM order_items
		WHERE order_id = ?
		ORDER BY item_index
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*order.Item, 0)
	for rows.Next() {
		var name, rewashReason string
		var quantity, qualityStatus int
		var unitPriceMinor int64

		if err = rows.Scan(&name, &quantity, &unitPriceMinor, &qualityStatus, &rewashReason); err != nil {
			return nil, err
		}

		price, moneyErr := kernel.MoneyFromMinorUnits(unitPriceMinor)
		if moneyErr != nil {
			return nil, moneyErr
		}

		item, itemErr := order.RestoreItem(name, quantity, price, order.QualityStatus(qualityStatus), rewashReason)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
