// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and staff assignment. Items and status
// history live in child tables keyed by the order id.
type OrderDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderNumber      string           `gorm:"type:varchar(64);not null;uniqueIndex"`
	Customer         CustomerDTO      `gorm:"embedded;embeddedPrefix:customer_"`
	Status           int              `gorm:"type:int;not null;index"`
	StaffID          *uuid.UUID       `gorm:"type:uuid;index"`
	TotalAmountMinor int64            `gorm:"type:bigint;not null"`
	Version          int              `gorm:"type:int;not null"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`
	Items            []ItemDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History          []StatusEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact details within the order table.
type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(64)"`
	Address string `gorm:"type:varchar(512)"`
}

// ItemDTO represents the database structure for persisting order items.
// ItemIndex preserves the position of the item within the order.
type ItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemIndex      int       `gorm:"type:int;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Quantity       int       `gorm:"type:int;not null"`
	UnitPriceMinor int64     `gorm:"type:bigint;not null"`
	QualityStatus  int       `gorm:"type:int;not null"`
	RewashReason   string    `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusEventDTO represents one entry of an order's status history.
// EventIndex preserves the append order of the history.
type StatusEventDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EventIndex int       `gorm:"type:int;not null"`
	Status     int       `gorm:"type:int;not null"`
	Note       string    `gorm:"type:varchar(512);not null"`
	Timestamp  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for status history entities.
func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including items, history, and optional staff assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var staffID *uuid.UUID
	if id := aggregate.Staff(); id != nil {
		raw := id.Bytes()
		staffID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        orderID,
			ItemIndex:      i,
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceMinor: item.UnitPrice().MinorUnits(),
			QualityStatus:  int(item.QualityStatus()),
			RewashReason:   item.RewashReason(),
		})
	}

	history := make([]StatusEventDTO, 0, len(aggregate.History()))
	for i, event := range aggregate.History() {
		history = append(history, StatusEventDTO{
			OrderID:    orderID,
			EventIndex: i,
			Status:     int(event.Status()),
			Note:       event.Note(),
			Timestamp:  event.Timestamp(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Email:   aggregate.Customer().Email(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
		},
		Status:           int(aggregate.Status()),
		StaffID:          staffID,
		TotalAmountMinor: aggregate.TotalAmount().MinorUnits(),
		Version:          aggregate.Version(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Items:            items,
		History:          history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, history, and staff
// assignment using RestoreOrder. Child rows are ordered by their stored index.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerInfo(
		dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone, dto.Customer.Address,
	)
	if err != nil {
		return nil, err
	}

	var staffID *kernel.UUID
	if dto.StaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*dto.StaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffID = &sID
	}

	totalAmount, err := kernel.MoneyFromMinorUnits(dto.TotalAmountMinor)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customer,
		items,
		order.Status(dto.Status),
		history,
		staffID,
		totalAmount,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemsToDomain(dtos []ItemDTO) ([]*order.Item, error) {
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].ItemIndex < dtos[j].ItemIndex })

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		price, err := kernel.MoneyFromMinorUnits(dto.UnitPriceMinor)
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreItem(
			dto.Name, dto.Quantity, price, order.QualityStatus(dto.QualityStatus), dto.RewashReason,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func historyToDomain(dtos []StatusEventDTO) ([]order.StatusEvent, error) {
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].EventIndex < dtos[j].EventIndex })

	history := make([]order.StatusEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := order.NewStatusEvent(order.Status(dto.Status), dto.Note, dto.Timestamp)
		if err != nil {
			return nil, err
		}
		history = append(history, event)
	}

	return history, nil
}
