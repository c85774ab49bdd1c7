// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetOrderTransitionsQueryIsNotConstructed = errors.New(
		"GetOrderTransitionsQuery must be created via NewGetOrderTransitionsQuery constructor",
	)
)

// GetOrderTransitionsQuery retrieves the current status of an order together
// with the statuses it may legally move to. The admin UI uses the answer to
// render only the buttons that will actually succeed.
type GetOrderTransitionsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTransitionsQuery creates a query for an order's transition options.
func NewGetOrderTransitionsQuery(orderID kernel.UUID) (GetOrderTransitionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTransitionsQuery{}, err
	}

	return GetOrderTransitionsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTransitionsQueryIsNotConstructed if validation fails.
func (q GetOrderTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTransitionsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being inspected.
func (q GetOrderTransitionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTransitionsQueryResponse is the transition read model for one order.
// Statuses are wire names; AvailableStatuses is empty for terminal orders.
type GetOrderTransitionsQueryResponse struct {
	CurrentStatus     string
	AvailableStatuses []string
	AllStatuses       []string
}
