package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentDetailsQueryHandler retrieves the payment record of an order.
type GetPaymentDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentDetailsQueryHandler creates a handler for payment detail queries.
// Requires a GORM database connection for query execution.
func NewGetPaymentDetailsQueryHandler(db *gorm.DB) GetPaymentDetailsQueryHandler {
	return GetPaymentDetailsQueryHandler{db: db}
}

// Handle executes the query for a single order's payment record.
// Returns an ObjectNotFoundError naming "order" when the order does not exist
// and one naming "payment" when the order exists but has no payment record.
func (h GetPaymentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentDetailsQuery,
) (GetPaymentDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentDetailsQueryResponse{}, err
	}

	var one int
	row := h.db.WithContext(ctx).Raw(`
		SELECT 1
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPaymentDetailsQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetPaymentDetailsQueryResponse{}, err
	}

	resp, err := scanPaymentDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return GetPaymentDetailsQueryResponse{}, err
	}
	if resp == nil {
		return GetPaymentDetailsQueryResponse{},
			errs.NewObjectNotFoundError("payment", query.OrderID().String())
	}

	return *resp, nil
}

// scanPaymentDetails reads one order's payment row into the read model.
// Returns nil without error when no payment record exists; shared with the
// order details handler which treats that as an optional section.
func scanPaymentDetails(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (*GetPaymentDetailsQueryResponse, error) {
	var (
		resp          GetPaymentDetailsQueryResponse
		id            uuid.UUID
		rawOrderID    uuid.UUID
		rawStatus     int
		transactionID sql.NullString
		paymentDate   sql.NullTime
	)

	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			payment_mode,
			payment_status,
			transaction_id,
			payment_date
		FROM payments
		WHERE order_id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&rawOrderID,
		&resp.Amount,
		&resp.PaymentMode,
		&rawStatus,
		&transactionID,
		&paymentDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	paymentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = paymentID

	respOrderID, err := kernel.UUIDFromBytes(rawOrderID[:])
	if err != nil {
		return nil, err
	}
	resp.OrderID = respOrderID

	resp.PaymentStatus = payment.Status(rawStatus).String()
	resp.TransactionID = transactionID.String
	if paymentDate.Valid {
		stamped := paymentDate.Time
		resp.PaymentDate = &stamped
	}

	return &resp, nil
}
