package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// PaymentMode identifies how an order is paid for.
type PaymentMode string

const (
	// PaymentModeCOD is cash on delivery.
	PaymentModeCOD PaymentMode = "COD"
	// PaymentModeOnline is a prepaid online payment.
	PaymentModeOnline PaymentMode = "ONLINE"
)

// Validate checks that the payment mode is one of the supported values.
func (m PaymentMode) Validate() error {
	if m != PaymentModeCOD && m != PaymentModeOnline {
		return errs.NewValueIsInvalidErrorWithCause("payment mode", fmt.Errorf("%q is not a valid payment mode", string(m)))
	}
	return nil
}

// Order represents a customer order in the admin system. It is the aggregate root
// that manages the order lifecycle from placement through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Total amount must be positive
//   - Status transitions follow the table in Status
//   - The delivery date is set exclusively as a side effect of reaching Delivered
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Orders are placed by the customer-facing
// system; this service only ever mutates status, delivery date and notes.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// totalAmount is the order total in the shop currency (must be positive)
	totalAmount float64

	// paymentMode records how the order is paid for
	paymentMode PaymentMode

	// status is the current state in the order lifecycle
	status Status

	// orderDate is when the order was placed
	orderDate time.Time

	// deliveryDate is stamped when the order reaches Delivered (nil before that)
	deliveryDate *time.Time

	// notes holds free-text annotations accumulated over the order's life
	notes string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// Orders enter the system in Pending; every later state is reached only
// through ChangeStatus.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	totalAmount float64,
	paymentMode PaymentMode,
	orderDate time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setTotalAmount(totalAmount),
		order.setPaymentMode(paymentMode),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any valid status plus the derived fields
// (delivery date, notes), and is intended for repository use only.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	totalAmount float64,
	paymentMode PaymentMode,
	status Status,
	orderDate time.Time,
	deliveryDate *time.Time,
	notes string,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setTotalAmount(totalAmount),
		order.setPaymentMode(paymentMode),
		order.setStatus(status),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	order.deliveryDate = deliveryDate
	order.notes = notes
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Call this when reconstructing
// orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PaymentMode returns how the order is paid for.
func (o *Order) PaymentMode() PaymentMode {
	return o.paymentMode
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns when the order was delivered.
// Returns nil for orders that have not reached Delivered.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Notes returns the accumulated free-text annotations on the order.
func (o *Order) Notes() string {
	return o.notes
}

// ChangeStatus transitions the order to the requested status.
//
// The move must be a table-approved edge from the current status; otherwise
// a ValueIsInvalidError naming both statuses is returned and the order is
// left untouched. On success:
//   - the status is overwritten with the requested one
//   - reaching Delivered stamps the delivery date with at (the only
//     derived-field side effect in the lifecycle)
//   - a non-empty note is appended to the order's notes
//
// at must come from the caller's clock, never from client input.
//
// Example:
//
//	if err := order.ChangeStatus(order.Confirmed, clock.Now(), "confirmed by admin"); err != nil {
//	    // Transition was rejected; order state is unchanged
//	}
func (o *Order) ChangeStatus(next Status, at time.Time, note string) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus

	if newStatus == Delivered {
		stamped := at
		o.deliveryDate = &stamped
	}

	if note != "" {
		o.appendNote(note)
	}

	return nil
}

// appendNote accumulates a note instead of overwriting earlier ones,
// keeping a rudimentary audit trail of transition annotations.
func (o *Order) appendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}

	if o.notes == "" {
		o.notes = note
		return
	}

	o.notes = o.notes + "\n" + note
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setTotalAmount validates and sets the order total.
// The total must be positive.
func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount",
			fmt.Errorf("%v is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

// setPaymentMode validates and sets the payment mode.
func (o *Order) setPaymentMode(paymentMode PaymentMode) error {
	if err := paymentMode.Validate(); err != nil {
		return err
	}
	o.paymentMode = paymentMode
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setOrderDate validates and sets the placement timestamp.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}
