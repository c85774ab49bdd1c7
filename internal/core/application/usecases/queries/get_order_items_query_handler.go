package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler retrieves the line items of an order.
// Item photo references are resolved to loadable URLs on the way out so the
// HTTP layer never sees raw CDN public ids.
type GetOrderItemsQueryHandler struct {
	db       *gorm.DB
	resolver ImageURLResolver
}

// NewGetOrderItemsQueryHandler creates a handler for order item queries.
func NewGetOrderItemsQueryHandler(db *gorm.DB, resolver ImageURLResolver) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db, resolver: resolver}
}

// Handle executes the query for a single order's items.
// Returns an ObjectNotFoundError when the order does not exist; an existing
// order with no items yields an empty slice.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]OrderItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.ensureOrderExists(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_type,
			item_name,
			item_description,
			item_photo,
			quantity,
			price,
			total
		FROM order_items
		WHERE order_id = ?
		ORDER BY item_name
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)

	for rows.Next() {
		var (
			item  OrderItemResponse
			id    uuid.UUID
			photo string
		)

		err = rows.Scan(
			&id,
			&item.Type,
			&item.Name,
			&item.Description,
			&photo,
			&item.Quantity,
			&item.Price,
			&item.Total,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.PhotoURL = h.resolver.Resolve(photo)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderItemsQueryHandler) ensureOrderExists(ctx context.Context, orderID kernel.UUID) error {
	var one int
	row := h.db.WithContext(ctx).Raw(`
		SELECT 1
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return err
	}

	return nil
}
