package commands

import (
	"context"
	"errors"
	"fmt"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/ports"
)

// ErrNoStaleOrdersFound is returned when no pending order is old enough to
// cancel. The job treats it as an expected outcome, not a failure.
var ErrNoStaleOrdersFound = errors.New("no stale pending orders found")

// CancelStaleOrdersCommandHandler cancels pending orders that exceeded the
// configured age. Each order is moved pending -> cancelled through the domain
// transition method, so the same invariants apply as for manual transitions;
// all cancellations in one run share a transaction.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale-order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the cleanup command.
// Returns ErrNoStaleOrdersFound when nothing qualifies for cancellation.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	now := h.clock.Now()
	cutoff := now.Add(-cmd.OlderThan())

	staleOrders, err := orderRepo.GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(staleOrders) == 0 {
		return ErrNoStaleOrdersFound
	}

	note := fmt.Sprintf("cancelled automatically: pending for more than %s", cmd.OlderThan())

	for _, ord := range staleOrders {
		if err = ord.ChangeStatus(order.Cancelled, now, note); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
