package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, kernel.NewUUID(), 350, order.PaymentModeCOD, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(id, kernel.NewUUID(), 350, order.PaymentModeCOD, status,
		time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), nil, "")
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	ord := pendingOrder(t, id)
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Confirmed, "confirmed by admin")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, ord.Status())
	assert.Nil(t, ord.DeliveryDate())
	assert.Equal(t, "confirmed by admin", ord.Notes())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredStampsDeliveryDate(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	ord := orderInStatus(t, id, order.OutForDelivery)
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Delivered, "")
	deliveredAt := time.Date(2024, 6, 2, 18, 45, 0, 0, time.UTC)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: deliveredAt})
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, ord.Status())
	require.NotNil(t, ord.DeliveryDate())
	assert.Equal(t, deliveredAt, *ord.DeliveryDate())
	repo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	ord := pendingOrder(t, id)
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Delivered, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "delivered")
	assert.Equal(t, order.Pending, ord.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalOrderRejectsEverything(t *testing.T) {
	ctx := t.Context()

	for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
		id := kernel.NewUUID()
		ord := orderInStatus(t, id, terminal)
		cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Confirmed, "")

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", mock.Anything, id).Return(ord, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, terminal, ord.Status())
	}
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Confirmed, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Confirmed, "")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	ord := pendingOrder(t, id)
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Confirmed, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(errors.New("write failure")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	ord := pendingOrder(t, id)
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Confirmed, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
