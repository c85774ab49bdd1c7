package queries

import (
	"errors"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetPaymentDetailsQueryIsNotConstructed = errors.New(
		"GetPaymentDetailsQuery must be created via NewGetPaymentDetailsQuery constructor",
	)
)

// GetPaymentDetailsQuery retrieves the payment record attached to an order.
type GetPaymentDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentDetailsQuery creates a query for an order's payment record.
func NewGetPaymentDetailsQuery(orderID kernel.UUID) (GetPaymentDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentDetailsQuery{}, err
	}

	return GetPaymentDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPaymentDetailsQueryIsNotConstructed if validation fails.
func (q GetPaymentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment is inspected.
func (q GetPaymentDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetPaymentDetailsQueryResponse is the payment read model for one order.
// PaymentDate is nil for records that have never been updated.
type GetPaymentDetailsQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Amount        float64
	PaymentMode   string
	PaymentStatus string
	TransactionID string
	PaymentDate   *time.Time
}
