// Package paymentrepo provides data transfer objects and mapping functions for
// payment record persistence.
package paymentrepo

import (
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment records.
// At most one record exists per order, enforced by the unique index on order_id.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount        float64
	PaymentMode   string
	PaymentStatus int
	TransactionID string
	PaymentDate   *time.Time
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment record to its database representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		OrderID:       p.OrderID().Bytes(),
		Amount:        p.Amount(),
		PaymentMode:   string(p.PaymentMode()),
		PaymentStatus: int(p.Status()),
		TransactionID: p.TransactionID(),
		PaymentDate:   p.PaymentDate(),
	}
}

// toDomain converts a database DTO to a payment record using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.Amount,
		order.PaymentMode(dto.PaymentMode),
		payment.Status(dto.PaymentStatus),
		dto.TransactionID,
		dto.PaymentDate,
	)
}
