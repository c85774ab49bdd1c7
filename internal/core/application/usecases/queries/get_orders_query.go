package queries

import (
	"errors"
	"fmt"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// OrdersFilter narrows the orders list to a dashboard view.
type OrdersFilter int

const (
	// FilterUnknown represents an invalid or undefined filter.
	FilterUnknown OrdersFilter = iota

	// FilterAll returns every order.
	FilterAll

	// FilterToday returns orders placed since the start of the current day.
	FilterToday

	// FilterPending returns orders awaiting confirmation.
	FilterPending

	// FilterDelivered returns delivered orders.
	FilterDelivered

	// FilterCancelled returns cancelled orders.
	FilterCancelled

	// FilterCOD returns cash-on-delivery orders regardless of status.
	FilterCOD
)

func getFilterStrings() map[OrdersFilter]string {
	return map[OrdersFilter]string{
		FilterAll:       "all",
		FilterToday:     "today",
		FilterPending:   "pending",
		FilterDelivered: "delivered",
		FilterCancelled: "cancelled",
		FilterCOD:       "cod",
	}
}

// OrdersFilterFromString parses a filter name into an OrdersFilter.
// Empty input means no filtering and maps to FilterAll.
func OrdersFilterFromString(s string) (OrdersFilter, error) {
	if s == "" {
		return FilterAll, nil
	}

	for filter, name := range getFilterStrings() {
		if name == s {
			return filter, nil
		}
	}

	return FilterUnknown, errs.NewValueIsInvalidErrorWithCause(
		"filter",
		fmt.Errorf("%q is not a valid orders filter", s),
	)
}

// Validate checks that the filter is one of the supported views.
func (f OrdersFilter) Validate() error {
	if _, ok := getFilterStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("filter",
			fmt.Errorf("%d is not a valid orders filter", f))
	}
	return nil
}

// String returns the wire name of the filter. Implements fmt.Stringer.
func (f OrdersFilter) String() string {
	if str, ok := getFilterStrings()[f]; ok {
		return str
	}
	return "unknown"
}

// GetOrdersQuery retrieves the orders list for the admin dashboard,
// optionally narrowed by a filter.
type GetOrdersQuery struct {
	filter OrdersFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the filtered orders list.
func NewGetOrdersQuery(filter OrdersFilter) (GetOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the requested dashboard view.
func (q GetOrdersQuery) Filter() OrdersFilter {
	return q.filter
}

// GetOrdersQueryResponse represents one order row in the admin list.
// Customer and payment columns come from left joins and may be empty when the
// referenced customer is gone or no payment record exists yet.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	CustomerName  string
	CustomerPhone string
	TotalAmount   float64
	PaymentMode   string
	Status        string
	OrderDate     time.Time
	DeliveryDate  *time.Time
	Notes         string
	PaymentStatus string
	TransactionID string
}
