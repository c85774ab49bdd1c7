package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler assembles the complete admin view of an order
// from the orders, customers, payments and order_items tables.
type GetOrderDetailsQueryHandler struct {
	db       *gorm.DB
	resolver ImageURLResolver
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB, resolver ImageURLResolver) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db, resolver: resolver}
}

// Handle executes the query for one order.
// Returns an ObjectNotFoundError when the order does not exist. A missing
// payment record leaves the Payment section nil rather than failing.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	orderRow, err := h.orderRow(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	paymentDetails, err := scanPaymentDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	itemsQuery, err := NewGetOrderItemsQuery(query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	items, err := NewGetOrderItemsQueryHandler(h.db, h.resolver).Handle(ctx, itemsQuery)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return GetOrderDetailsQueryResponse{
		Order:   orderRow,
		Payment: paymentDetails,
		Items:   items,
	}, nil
}

func (h GetOrderDetailsQueryHandler) orderRow(ctx context.Context, orderID kernel.UUID) (GetOrdersQueryResponse, error) {
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

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrdersQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrdersQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	resp.ID = respID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
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

	return resp, nil
}
