package queries

import (
	"context"
	"database/sql"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentOrdersLimit = 10

// GetDashboardSummaryQueryHandler computes the dashboard headline numbers.
// All aggregation happens in SQL; the handler's clock pins the day and week
// boundaries so the numbers are reproducible in tests.
type GetDashboardSummaryQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGetDashboardSummaryQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection and a clock for period boundaries.
func NewGetDashboardSummaryQueryHandler(db *gorm.DB, clock ports.Clock) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db, clock: clock}
}

// Handle executes the query and assembles the summary read model.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	now := h.clock.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -6)

	var resp GetDashboardSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE order_date >= ?
	`, startOfDay).Row()
	if err := row.Scan(&resp.TodayOrdersCount); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE order_date >= ? AND status != ?
	`, startOfDay, order.Cancelled).Row()
	if err := row.Scan(&resp.TodayRevenue); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ?
	`, order.Pending).Row()
	if err := row.Scan(&resp.PendingCount); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ? AND delivery_date >= ?
	`, order.Delivered, startOfWeek).Row()
	if err := row.Scan(&resp.DeliveredLastWeekCount); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	recent, err := h.recentOrders(ctx)
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}
	resp.RecentOrders = recent

	return resp, nil
}

func (h GetDashboardSummaryQueryHandler) recentOrders(ctx context.Context) ([]RecentOrderSummary, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.name,
			o.total_amount,
			o.status,
			o.order_date
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.order_date DESC
		LIMIT ?
	`, recentOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := make([]RecentOrderSummary, 0, recentOrdersLimit)

	for rows.Next() {
		var (
			summary      RecentOrderSummary
			id           uuid.UUID
			customerName sql.NullString
			rawStatus    int
		)

		err = rows.Scan(
			&id,
			&customerName,
			&summary.TotalAmount,
			&rawStatus,
			&summary.OrderDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID
		summary.CustomerName = customerName.String
		summary.Status = order.Status(rawStatus).String()

		recent = append(recent, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recent, nil
}
