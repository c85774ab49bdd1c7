package queries

import (
	"errors"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
		"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
	)
)

// GetDashboardSummaryQuery retrieves the headline numbers for the admin
// dashboard: today's volume and revenue, the pending backlog, recent delivery
// throughput and the latest orders.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a query for the dashboard summary.
// This is a parameterless query.
func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardSummaryQueryIsNotConstructed if validation fails.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// RecentOrderSummary is one row of the dashboard's latest-orders panel.
type RecentOrderSummary struct {
	ID           kernel.UUID
	CustomerName string
	TotalAmount  float64
	Status       string
	OrderDate    time.Time
}

// GetDashboardSummaryQueryResponse aggregates the dashboard numbers.
// TodayRevenue excludes cancelled orders; DeliveredLastWeekCount covers the
// trailing seven days including today.
type GetDashboardSummaryQueryResponse struct {
	TodayOrdersCount       int64
	TodayRevenue           float64
	PendingCount           int64
	DeliveredLastWeekCount int64
	RecentOrders           []RecentOrderSummary
}
