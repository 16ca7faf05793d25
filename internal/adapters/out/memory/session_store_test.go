package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"deliverydesk/internal/adapters/out/memory"
	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widget(t *testing.T) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.RefIDFromInt(10), "Widget", nil)
	require.NoError(t, err)
	return p
}

func one(t *testing.T) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	return q
}

func TestWorkflowUnitOfWork_CommitPublishes(t *testing.T) {
	ctx := t.Context()
	store := memory.NewSessionStore()
	uow := memory.NewWorkflowUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	repo := uow.WorkflowRepository()
	wf, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, wf.AddProduct(widget(t), one(t)))
	require.NoError(t, repo.Update(ctx, wf))

	// the staged copy is visible inside the unit of work
	staged, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, staged.DraftItems(), 1)

	require.NoError(t, uow.Commit(ctx))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.DraftItems(), 1)
}

func TestWorkflowUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	store := memory.NewSessionStore()
	uow := memory.NewWorkflowUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	wf, err := uow.WorkflowRepository().Get(ctx)
	require.NoError(t, err)
	require.NoError(t, wf.AddProduct(widget(t), one(t)))
	require.NoError(t, uow.WorkflowRepository().Update(ctx, wf))
	require.NoError(t, uow.Rollback(ctx))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.DraftItems())
}

func TestWorkflowUnitOfWork_GetReturnsCopy(t *testing.T) {
	ctx := t.Context()
	store := memory.NewSessionStore()
	uow := memory.NewWorkflowUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	wf, err := uow.WorkflowRepository().Get(ctx)
	require.NoError(t, err)
	require.NoError(t, wf.AddProduct(widget(t), one(t)))
	require.NoError(t, uow.Commit(ctx))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.DraftItems(), "changes not passed to Update must not leak")
}

func TestWorkflowUnitOfWork_InactiveErrors(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewWorkflowUnitOfWorkFactory(memory.NewSessionStore()).Create()

	require.ErrorIs(t, uow.Commit(ctx), memory.ErrUnitOfWorkIsNotActive)
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrUnitOfWorkIsNotActive)

	_, err := uow.WorkflowRepository().Get(ctx)
	require.ErrorIs(t, err, memory.ErrUnitOfWorkIsNotActive)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "second Begin is a no-op")
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrUnitOfWorkIsNotActive)
}

func TestWorkflowUnitOfWork_BeginHonorsContext(t *testing.T) {
	store := memory.NewSessionStore()
	factory := memory.NewWorkflowUnitOfWorkFactory(store)

	holder := factory.Create()
	require.NoError(t, holder.Begin(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	err := factory.Create().Begin(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = store.Snapshot(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, holder.Rollback(t.Context()))
}

func TestWorkflowUnitOfWork_SerializesActions(t *testing.T) {
	ctx := t.Context()
	store := memory.NewSessionStore()
	factory := memory.NewWorkflowUnitOfWorkFactory(store)

	product, quantity := widget(t), one(t)

	const workers = 20
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				t.Error(err)
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.WorkflowRepository()
			wf, err := repo.Get(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			if err = wf.AddProduct(product, quantity); err != nil {
				t.Error(err)
				return
			}
			if err = repo.Update(ctx, wf); err != nil {
				t.Error(err)
				return
			}
			if err = uow.Commit(ctx); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	items := snap.DraftItems()
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity().Int())
}
