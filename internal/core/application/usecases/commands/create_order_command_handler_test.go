package commands_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	item, err := order.NewLineItem(kernel.NewUUID(), 2)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(id, []order.LineItem{item})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Save", ctx, savedVariant[order.Created]()).Return(nil).Once()

	publisher := &recordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(repo, testNotifier(publisher))

	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)

	require.Len(t, publisher.events, 1)
	require.Equal(t, id.String(), publisher.events[0].OrderID)
	require.Equal(t, order.StateCreated, publisher.events[0].State)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewCreateOrderCommandHandler(repo, testNotifier(&recordingPublisher{}))

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_EmptyOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	publisher := &recordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(repo, testNotifier(publisher))

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrEmptyOrder)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	require.Empty(t, publisher.events)
}

func TestCreateOrderCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	item, err := order.NewLineItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []order.LineItem{item})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Save", ctx, mock.Anything).Return(errors.New("save error")).Once()

	publisher := &recordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(repo, testNotifier(publisher))

	require.Error(t, h.Handle(ctx, cmd))
	require.Empty(t, publisher.events)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	item, err := order.NewLineItem(kernel.NewUUID(), 1)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(kernel.UUID{}, []order.LineItem{item})
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidLineItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []order.LineItem{{}})
	require.Error(t, err)
}

// timestamps on saved orders come from the handler clock
func TestCreateOrderCommandHandler_Handle_TimestampsFromClock(t *testing.T) {
	ctx := t.Context()
	item, err := order.NewLineItem(kernel.NewUUID(), 3)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []order.LineItem{item})
	require.NoError(t, err)

	before := time.Now()

	var saved order.Order[order.Created]
	repo := new(MockOrderRepository)
	repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(order.Order[order.Created])
	}).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo, testNotifier(&recordingPublisher{}))
	require.NoError(t, h.Handle(ctx, cmd))

	require.False(t, saved.CreatedAt().Before(before))
	require.Equal(t, saved.CreatedAt(), saved.UpdatedAt())
}
