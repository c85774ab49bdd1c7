// Package ports defines repository and transaction interfaces for the domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The status engine relies on Get/Update running inside the same transaction
// so the read-validate-write sequence is serialized per order.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the identifier does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves orders still in pending status that were
	// placed before the cutoff. Used by the stale-order cancellation job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
