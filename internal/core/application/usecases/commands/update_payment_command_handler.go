package commands

import (
	"context"
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/core/ports"
	"orderadmin/internal/pkg/errs"
)

// UpdatePaymentCommandHandler upserts an order's payment record.
// The order must exist; its payment record is created on first update using
// the order's own amount and payment mode, then overwritten on later ones.
// Both the order read and the payment write run inside one transaction.
type UpdatePaymentCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewUpdatePaymentCommandHandler creates a handler for payment updates.
// The clock stamps the payment date on every update.
func NewUpdatePaymentCommandHandler(uowFactory UoWFactory, clock ports.Clock) UpdatePaymentCommandHandler {
	return UpdatePaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the payment update command.
// Returns an ObjectNotFoundError when the order does not exist; storage
// errors pass through opaquely.
func (h UpdatePaymentCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()

	existing, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, newErr := payment.NewPayment(
			kernel.NewUUID(),
			ord.ID(),
			ord.TotalAmount(),
			ord.PaymentMode(),
			cmd.PaymentStatus(),
		)
		if newErr != nil {
			return newErr
		}
		if newErr = created.Update(cmd.PaymentStatus(), cmd.TransactionID(), h.clock.Now()); newErr != nil {
			return newErr
		}
		if newErr = paymentRepo.Add(ctx, created); newErr != nil {
			return newErr
		}
	case err != nil:
		return err
	default:
		if updErr := existing.Update(cmd.PaymentStatus(), cmd.TransactionID(), h.clock.Now()); updErr != nil {
			return updErr
		}
		if updErr := paymentRepo.Update(ctx, existing); updErr != nil {
			return updErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
