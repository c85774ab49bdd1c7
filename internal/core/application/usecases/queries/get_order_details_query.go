package queries

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery retrieves the full admin view of a single order:
// the order row, its payment record if one exists, and its line items.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for a single order's details.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being inspected.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsQueryResponse is the complete read model for one order.
// Payment is nil when no payment record exists yet.
type GetOrderDetailsQueryResponse struct {
	Order   GetOrdersQueryResponse
	Payment *GetPaymentDetailsQueryResponse
	Items   []OrderItemResponse
}
