package commands_test

import (
	"testing"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePaymentCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewUpdatePaymentCommand(id, payment.StatusCompleted, "TXN-1001")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, id.IsEqual(cmd.OrderID()))
		assert.Equal(t, payment.StatusCompleted, cmd.PaymentStatus())
		assert.Equal(t, "TXN-1001", cmd.TransactionID())
	})

	t.Run("transaction ID is optional", func(t *testing.T) {
		cmd, err := commands.NewUpdatePaymentCommand(kernel.NewUUID(), payment.StatusPending, "")

		require.NoError(t, err)
		assert.Empty(t, cmd.TransactionID())
	})

	t.Run("rejects zero order ID", func(t *testing.T) {
		_, err := commands.NewUpdatePaymentCommand(kernel.UUID{}, payment.StatusCompleted, "")

		require.Error(t, err)
	})

	t.Run("missing payment status is a required-value error", func(t *testing.T) {
		_, err := commands.NewUpdatePaymentCommand(kernel.NewUUID(), payment.StatusUnknown, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unrecognized payment status", func(t *testing.T) {
		_, err := commands.NewUpdatePaymentCommand(kernel.NewUUID(), payment.Status(42), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdatePaymentCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrUpdatePaymentCommandIsNotConstructed, err)
	})
}
