package commands_test

import (
	"errors"
	"testing"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand("10", 3)
	require.NoError(t, err)

	lookup := new(MockCatalog)
	lookup.On("FindProduct", ctx, refIDMatching("10")).Return(mustProduct(t, 10, "Widget"), true, nil).Once()

	wf := workflow.New()
	factory, uow, repo := expectCommitted(t, wf)

	h := commands.NewAddProductCommandHandler(lookup, factory)
	require.NoError(t, h.Handle(ctx, cmd))

	items := wf.DraftItems()
	require.Len(t, items, 1)
	assert.Equal(t, "10", items[0].ProductID().String())
	assert.Equal(t, 3, items[0].Quantity().Int())

	lookup.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand("99", 1)
	require.NoError(t, err)

	lookup := new(MockCatalog)
	lookup.On("FindProduct", ctx, mock.Anything).Return(catalog.Product{}, false, nil).Once()
	factory := new(MockWorkflowUoWFactory)

	h := commands.NewAddProductCommandHandler(lookup, factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, workflow.ErrInvalidSelection)

	factory.AssertNotCalled(t, "Create")
}

func TestAddProductCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand("10", 1)
	require.NoError(t, err)

	lookupErr := errors.New("cache down")
	lookup := new(MockCatalog)
	lookup.On("FindProduct", ctx, mock.Anything).Return(catalog.Product{}, false, lookupErr).Once()

	h := commands.NewAddProductCommandHandler(lookup, new(MockWorkflowUoWFactory))
	require.ErrorIs(t, h.Handle(ctx, cmd), lookupErr)
}

func TestAddProductCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAddProductCommandHandler(new(MockCatalog), new(MockWorkflowUoWFactory))
	err := h.Handle(t.Context(), commands.AddProductCommand{})
	require.ErrorIs(t, err, commands.ErrAddProductCommandIsNotConstructed)
}

func TestAddProductCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand("10", 1)
	require.NoError(t, err)

	lookup := new(MockCatalog)
	lookup.On("FindProduct", ctx, mock.Anything).Return(mustProduct(t, 10, "Widget"), true, nil).Once()

	uow := new(MockWorkflowUoW)
	factory := new(MockWorkflowUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddProductCommandHandler(lookup, factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand("10", 1)
	require.NoError(t, err)

	lookup := new(MockCatalog)
	lookup.On("FindProduct", ctx, mock.Anything).Return(mustProduct(t, 10, "Widget"), true, nil).Once()

	wf := workflow.New()
	repo := new(MockWorkflowRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkflowRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(wf, nil).Once(),
		repo.On("Update", ctx, wf).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(lookup, factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand("10", 1)
	require.NoError(t, err)

	lookup := new(MockCatalog)
	lookup.On("FindProduct", ctx, mock.Anything).Return(mustProduct(t, 10, "Widget"), true, nil).Once()

	repo := new(MockWorkflowRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkflowRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(nil, errors.New("get error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(lookup, factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
