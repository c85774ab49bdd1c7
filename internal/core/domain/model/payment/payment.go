// Package payment provides the payment record entity attached to orders.
// Unlike the order lifecycle, payment status carries no transition table:
// the original system lets admins correct payment state freely (e.g. marking
// a failed payment refunded), so Update accepts any valid status.
package payment

import (
	"errors"
	"fmt"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not created
// through the NewPayment or RestorePayment factory methods.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Status represents the state of a payment record.
type Status int

const (
	// StatusUnknown represents an invalid or undefined payment status.
	StatusUnknown Status = iota

	// StatusPending means payment has not completed yet (the COD default).
	StatusPending

	// StatusCompleted means the payment settled successfully.
	StatusCompleted

	// StatusFailed means the payment attempt failed.
	StatusFailed

	// StatusRefunded means a completed payment was returned to the customer.
	StatusRefunded

	// StatusCancelled means the payment was voided alongside its order.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
		StatusRefunded:  "refunded",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
		StatusRefunded:  "refunded",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a wire name into a payment Status.
// Returns a ValueIsRequiredError for empty input.
func StatusFromString(s string) (Status, error) {
	if s == "" {
		return StatusUnknown, errs.NewValueIsRequiredError("payment status")
	}

	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the Status is one of the valid payment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Payment is the payment record for a single order. At most one payment
// record exists per order; admin updates overwrite status and transaction
// reference and restamp the payment date.
type Payment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	amount        float64
	paymentMode   order.PaymentMode
	status        Status
	transactionID string
	paymentDate   *time.Time

	isConstructed bool
}

// NewPayment creates a payment record for an order with validation.
// The amount and payment mode come from the order the record belongs to.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount float64,
	paymentMode order.PaymentMode,
	status Status,
) (*Payment, error) {
	p := &Payment{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setPaymentMode(paymentMode),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment record from persisted state.
// Intended for repository use only.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount float64,
	paymentMode order.PaymentMode,
	status Status,
	transactionID string,
	paymentDate *time.Time,
) (*Payment, error) {
	p := &Payment{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setPaymentMode(paymentMode),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	p.transactionID = transactionID
	p.paymentDate = paymentDate
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// ID returns the payment record's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this payment belongs to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the payment amount.
func (p *Payment) Amount() float64 {
	return p.amount
}

// PaymentMode returns how the payment is made.
func (p *Payment) PaymentMode() order.PaymentMode {
	return p.paymentMode
}

// Status returns the current payment status.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionID returns the external transaction reference, if any.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// PaymentDate returns when the payment record was last updated.
// Nil for records that have never been updated.
func (p *Payment) PaymentDate() *time.Time {
	return p.paymentDate
}

// Update overwrites the payment status and transaction reference and stamps
// the payment date with at. at must come from the caller's clock.
func (p *Payment) Update(status Status, transactionID string, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	p.transactionID = transactionID
	stamped := at
	p.paymentDate = &stamped
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setPaymentMode(paymentMode order.PaymentMode) error {
	if err := paymentMode.Validate(); err != nil {
		return err
	}
	p.paymentMode = paymentMode
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
