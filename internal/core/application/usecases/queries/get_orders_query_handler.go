package queries

import (
	"context"
	"database/sql"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the filtered orders list from the database.
// Uses direct SQL with left joins for optimal read performance in the CQRS
// pattern; the today filter is evaluated against the handler's clock so tests
// can pin the day boundary.
type GetOrdersQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGetOrdersQueryHandler creates a handler for orders list queries.
// Requires a GORM database connection and a clock for the today filter.
func NewGetOrdersQueryHandler(db *gorm.DB, clock ports.Clock) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, clock: clock}
}

// Handle executes the query to retrieve the orders list.
// Returns rows sorted newest first; customer and payment data come from
// left joins and may be absent.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseSQL := `
		SELECT
			o.id,
			o.customer_id,
			c.name,
			c.phone,
			o.total_amount,
			o.payment_mode,
			o.status,
			o.order_date,
			o.delivery_date,
			o.notes,
			p.payment_status,
			p.transaction_id
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		LEFT JOIN payments p ON p.order_id = o.id
	`

	var (
		where string
		args  []any
	)

	switch query.Filter() {
	case FilterToday:
		now := h.clock.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		where = "WHERE o.order_date >= ?"
		args = append(args, startOfDay)
	case FilterPending:
		where = "WHERE o.status = ?"
		args = append(args, order.Pending)
	case FilterDelivered:
		where = "WHERE o.status = ?"
		args = append(args, order.Delivered)
	case FilterCancelled:
		where = "WHERE o.status = ?"
		args = append(args, order.Cancelled)
	case FilterCOD:
		where = "WHERE o.payment_mode = ?"
		args = append(args, string(order.PaymentModeCOD))
	case FilterAll, FilterUnknown:
		// FilterUnknown cannot reach here; constructor validation rejects it.
	}

	rows, err := h.db.WithContext(ctx).
		Raw(baseSQL+where+" ORDER BY o.order_date DESC", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			resp          GetOrdersQueryResponse
			id            uuid.UUID
			customerID    uuid.UUID
			customerName  sql.NullString
			customerPhone sql.NullString
			rawStatus     int
			deliveryDate  sql.NullTime
			paymentStatus sql.NullInt64
			transactionID sql.NullString
		)

		err = rows.Scan(
			&id,
			&customerID,
			&customerName,
			&customerPhone,
			&resp.TotalAmount,
			&resp.PaymentMode,
			&rawStatus,
			&resp.OrderDate,
			&deliveryDate,
			&resp.Notes,
			&paymentStatus,
			&transactionID,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		resp.CustomerName = customerName.String
		resp.CustomerPhone = customerPhone.String
		resp.Status = order.Status(rawStatus).String()
		if deliveryDate.Valid {
			stamped := deliveryDate.Time
			resp.DeliveryDate = &stamped
		}
		if paymentStatus.Valid {
			resp.PaymentStatus = payment.Status(paymentStatus.Int64).String()
		}
		resp.TransactionID = transactionID.String

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
