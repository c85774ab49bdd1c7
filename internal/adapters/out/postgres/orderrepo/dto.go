// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes on the
// columns the admin dashboard filters by (status, customer).
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount  float64
	PaymentMode  string
	Status       int `gorm:"index"`
	OrderDate    time.Time
	DeliveryDate *time.Time
	Notes        string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single line item of an order. Items are written by
// the customer-facing system; this service only reads them for display, so no
// domain aggregate exists for them and queries consume the DTO directly.
type OrderItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ItemType        string
	ItemName        string
	ItemPhoto       string
	ItemDescription string
	Quantity        int
	Price           float64
	Total           float64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:           order.ID().Bytes(),
		CustomerID:   order.CustomerID().Bytes(),
		TotalAmount:  order.TotalAmount(),
		PaymentMode:  string(order.PaymentMode()),
		Status:       int(order.Status()),
		OrderDate:    order.OrderDate(),
		DeliveryDate: order.DeliveryDate(),
		Notes:        order.Notes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including derived fields using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.TotalAmount,
		order.PaymentMode(dto.PaymentMode),
		order.Status(dto.Status),
		dto.OrderDate,
		dto.DeliveryDate,
		dto.Notes,
	)
}
