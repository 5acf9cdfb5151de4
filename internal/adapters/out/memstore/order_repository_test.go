package memstore_test

import (
	"sync"
	"testing"
	"time"

	"orders/internal/adapters/out/memstore"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func newCreatedOrder(t *testing.T) order.Order[order.Created] {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), 3)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.LineItem{li}, time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderRepository_SaveAndGet(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()
	created := newCreatedOrder(t)

	require.NoError(t, repo.Save(ctx, created))

	v, err := repo.Get(ctx, created.ID())
	require.NoError(t, err)
	require.True(t, v.ID().IsEqual(created.ID()))

	got, ok := v.(order.Order[order.Created])
	require.True(t, ok)
	require.Equal(t, created.LineItems(), got.LineItems())
}

func TestOrderRepository_Get_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestOrderRepository_Save_UpsertsState(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()
	created := newCreatedOrder(t)

	require.NoError(t, repo.Save(ctx, created))
	require.NoError(t, repo.Save(ctx, order.Confirm(created, time.Now())))

	v, err := repo.Get(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, order.StateConfirmed, order.VariantStateName(v))
}

func TestOrderRepository_Save_NotConstructed(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()

	err := repo.Save(ctx, order.Order[order.Created]{})
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestFindOrder_TypedRead(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()
	created := newCreatedOrder(t)
	require.NoError(t, repo.Save(ctx, created))

	got, err := memstore.FindOrder[order.Created](ctx, repo, created.ID())
	require.NoError(t, err)
	require.True(t, got.IsEqual(created))
}

func TestFindOrder_StateMismatch(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()
	created := newCreatedOrder(t)
	require.NoError(t, repo.Save(ctx, order.Confirm(created, time.Now())))

	_, err := memstore.FindOrder[order.Created](ctx, repo, created.ID())
	require.ErrorIs(t, err, errs.ErrInvalidOrderType)

	_, err = memstore.FindOrder[order.Shipped](ctx, repo, created.ID())
	require.ErrorIs(t, err, errs.ErrInvalidOrderType)
}

func TestFindOrder_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()

	_, err := memstore.FindOrder[order.Created](ctx, repo, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestOrderRepository_GetAllCreated(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()

	first := newCreatedOrder(t)
	second := newCreatedOrder(t)
	confirmed := order.Confirm(newCreatedOrder(t), time.Now())

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, confirmed))

	created, err := repo.GetAllCreated(ctx)
	require.NoError(t, err)
	require.Len(t, created, 2)

	ids := []string{created[0].ID().String(), created[1].ID().String()}
	require.ElementsMatch(t, []string{first.ID().String(), second.ID().String()}, ids)
}

func TestOrderRepository_ConcurrentSaves(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()

	errCh := make(chan error, 40)
	var wg sync.WaitGroup
	for range 20 {
		o := newCreatedOrder(t)
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- repo.Save(ctx, o)
			_, err := repo.Get(ctx, o.ID())
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	created, err := repo.GetAllCreated(ctx)
	require.NoError(t, err)
	require.Len(t, created, 20)
}
