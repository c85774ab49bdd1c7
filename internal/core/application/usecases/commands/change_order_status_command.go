package commands

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status, optionally attaching a note. The target status is checked
// against the transition table only when the handler has read the order's
// current state; the command itself validates the inputs in isolation.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Confirmed, "confirmed by admin")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status
	note         string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// Validates that the order ID is valid and the target is a recognized status;
// a zero target yields a ValueIsRequiredError (the caller omitted the field).
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
	note string,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested lifecycle status.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Note returns the optional free-text note to attach to the order.
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if targetStatus == order.Unknown {
		return errs.NewValueIsRequiredError("status")
	}
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
