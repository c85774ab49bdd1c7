package ports

import (
	"context"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// At most one payment record exists per order.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrderID retrieves the payment record attached to an order.
	// Returns an ObjectNotFoundError when the order has no payment record yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
