package commands

import (
	"errors"
	"fmt"
	"time"

	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand triggers cancellation of orders that have sat in
// pending status longer than the given age. Cancellation goes through the
// same transition rules as a manual request; pending -> cancelled is a
// table-approved edge.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
// olderThan must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setOlderThan(olderThan); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age a pending order must reach to be cancelled.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("older than",
			fmt.Errorf("%s is not a positive duration", olderThan))
	}

	c.olderThan = olderThan
	return nil
}
