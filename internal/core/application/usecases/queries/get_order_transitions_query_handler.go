package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTransitionsQueryHandler answers which statuses an order can move to.
// Reads the current status directly from the database and derives the allowed
// set from the domain transition table, so the read model can never disagree
// with what a subsequent transition command would accept.
type GetOrderTransitionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTransitionsQueryHandler creates a handler for transition queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTransitionsQueryHandler(db *gorm.DB) GetOrderTransitionsQueryHandler {
	return GetOrderTransitionsQueryHandler{db: db}
}

// Handle executes the query for a single order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTransitionsQuery,
) (GetOrderTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTransitionsQueryResponse{}, err
	}

	var rawStatus int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&rawStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTransitionsQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderTransitionsQueryResponse{}, err
	}

	current := order.Status(rawStatus)

	available := make([]string, 0)
	for _, next := range current.AllowedTransitions() {
		available = append(available, next.String())
	}

	all := make([]string, 0)
	for _, status := range order.AllStatuses() {
		all = append(all, status.String())
	}

	return GetOrderTransitionsQueryResponse{
		CurrentStatus:     current.String(),
		AvailableStatuses: available,
		AllStatuses:       all,
	}, nil
}
