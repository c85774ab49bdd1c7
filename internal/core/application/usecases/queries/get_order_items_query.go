package queries

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetOrderItemsQueryIsNotConstructed = errors.New(
		"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
	)
)

// ImageURLResolver turns a stored photo reference into a URL the admin UI can
// load directly. References that are already absolute URLs pass through
// unchanged; bare public ids get a CDN delivery URL built around them.
type ImageURLResolver interface {
	Resolve(ref string) string
}

// GetOrderItemsQuery retrieves the line items of a single order.
type GetOrderItemsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a query for an order's line items.
func NewGetOrderItemsQuery(orderID kernel.UUID) (GetOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderItemsQueryIsNotConstructed if validation fails.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are listed.
func (q GetOrderItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one line item with its photo already resolved
// to a loadable URL.
type OrderItemResponse struct {
	ID          kernel.UUID
	Type        string
	Name        string
	Description string
	PhotoURL    string
	Quantity    int
	Price       float64
	Total       float64
}
