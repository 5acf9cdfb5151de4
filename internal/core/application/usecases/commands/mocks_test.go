package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, v order.Variant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (order.Variant, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(order.Variant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllCreated(ctx context.Context) ([]order.Order[order.Created], error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]order.Order[order.Created]), args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []ports.OrderChangedEvent
}

func (p *recordingPublisher) PublishOrderChanged(_ context.Context, event ports.OrderChangedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func testNotifier(publisher ports.OrderEventPublisher) commands.OrderEventNotifier {
	return commands.NewOrderEventNotifier(publisher, slog.New(slog.DiscardHandler))
}

func newCreatedOrder(t *testing.T, items ...order.LineItem) order.Order[order.Created] {
	t.Helper()
	if len(items) == 0 {
		li, err := order.NewLineItem(kernel.NewUUID(), 1)
		require.NoError(t, err)
		items = []order.LineItem{li}
	}
	o, err := order.NewOrder(kernel.NewUUID(), items, time.Now())
	require.NoError(t, err)
	return o
}

// savedVariant matches any saved order in the given state.
func savedVariant[S order.State]() any {
	return mock.MatchedBy(func(v order.Variant) bool {
		_, ok := v.(order.Order[S])
		return ok
	})
}
