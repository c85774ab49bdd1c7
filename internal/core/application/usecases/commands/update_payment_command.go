package commands

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var ErrUpdatePaymentCommandIsNotConstructed = errors.New(
	"UpdatePaymentCommand must be created via NewUpdatePaymentCommand constructor",
)

// UpdatePaymentCommand represents an admin correction of an order's payment
// record: status plus an optional external transaction reference. If the order
// has no payment record yet, the handler creates one from the order's amount
// and payment mode.
type UpdatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus payment.Status
	transactionID string

	guard guard.ConstructorGuard
}

// NewUpdatePaymentCommand creates a command to update an order's payment record.
// A zero payment status yields a ValueIsRequiredError.
func NewUpdatePaymentCommand(
	orderID kernel.UUID,
	paymentStatus payment.Status,
	transactionID string,
) (UpdatePaymentCommand, error) {
	paymentCommand := UpdatePaymentCommand{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return UpdatePaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment is updated.
func (c UpdatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the requested payment status.
func (c UpdatePaymentCommand) PaymentStatus() payment.Status {
	return c.paymentStatus
}

// TransactionID returns the external transaction reference, possibly empty.
func (c UpdatePaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *UpdatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePaymentCommand) setPaymentStatus(paymentStatus payment.Status) error {
	if paymentStatus == payment.StatusUnknown {
		return errs.NewValueIsRequiredError("payment status")
	}
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
