package commands

import (
	"context"

	"orderadmin/internal/core/ports"
)

// ChangeOrderStatusCommandHandler executes order status transitions.
// It performs a single synchronous read-validate-write sequence: the order is
// re-read from storage on every call (no cached state), the requested move is
// checked against the transition table, and either the full update is
// committed or nothing is written. Running the sequence inside one unit of
// work serializes concurrent transitions against the same order, so the
// stored status only ever advances along table-approved edges.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, ports.SystemClock{})
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Delivered, "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // transition not allowed from the current status
//	case err != nil:
//	    // storage failure
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// The clock supplies the instant stamped into delivery_date when an order
// reaches delivered.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status transition command.
// Reads the order, applies ChangeStatus (which enforces the transition table
// and stamps the delivery date on delivered), and persists the result. A
// failed validation performs no write; errors pass through with their errs
// sentinels intact for the caller to classify.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.ChangeStatus(cmd.TargetStatus(), h.clock.Now(), cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
