package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newCreatedOrder(t)
	extra, err := order.NewLineItem(kernel.NewUUID(), 5)
	require.NoError(t, err)
	cmd, err := commands.NewAddLineItemCommand(existing.ID(), extra)
	require.NoError(t, err)

	var saved order.Order[order.Created]
	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(order.Order[order.Created])
		}).Return(nil).Once(),
	)

	publisher := &recordingPublisher{}
	h := commands.NewAddLineItemCommandHandler(repo, testNotifier(publisher))

	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)

	require.Len(t, saved.LineItems(), 2)
	require.True(t, saved.LineItems()[1].IsEqual(extra))
	require.Len(t, publisher.events, 1)
	require.Equal(t, order.StateCreated, publisher.events[0].State)
}

func TestAddLineItemCommandHandler_Handle_NotModifiable(t *testing.T) {
	ctx := t.Context()
	confirmed := order.Confirm(newCreatedOrder(t), time.Now())
	extra, err := order.NewLineItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewAddLineItemCommand(confirmed.ID(), extra)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, confirmed.ID()).Return(confirmed, nil).Once()

	h := commands.NewAddLineItemCommandHandler(repo, testNotifier(&recordingPublisher{}))

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidOrderType)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddLineItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	extra, err := order.NewLineItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewAddLineItemCommand(id, extra)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewOrderNotFoundError(id.String())).Once()

	h := commands.NewAddLineItemCommandHandler(repo, testNotifier(&recordingPublisher{}))

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestAddLineItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddLineItemCommand{}

	repo := new(MockOrderRepository)
	h := commands.NewAddLineItemCommandHandler(repo, testNotifier(&recordingPublisher{}))

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAddLineItemCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
