// Package services contains domain services: operations that span more than
// one aggregate and therefore do not belong to any single aggregate root.
//
// StaffAssigner keeps the order/staff relationship bidirectionally consistent,
// StaffDispatcher selects the least-loaded staff member for an order, and
// InvoiceCalculator prices an order's items under a PricingPolicy without
// mutating the order.
package services
