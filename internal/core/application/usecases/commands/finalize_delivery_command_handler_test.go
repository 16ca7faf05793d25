package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFinalizeDeliveryCommandHandler_Handle_CreatesDelivery(t *testing.T) {
	ctx := t.Context()
	customer := mustCustomer(t, 1, "Ann")

	lookup := new(MockCatalog)
	lookup.On("FindCustomer", ctx, refIDMatching("1")).Return(customer, true, nil).Once()

	wf := workflow.New()
	require.NoError(t, wf.AddProduct(mustProduct(t, 10, "Widget"), mustQuantity(t, 3)))
	factory, uow, repo := expectCommitted(t, wf)

	h := commands.NewFinalizeDeliveryCommandHandler(lookup, factory, discardLogger())
	d, err := h.Handle(ctx, commands.NewFinalizeDeliveryCommand("1"))
	require.NoError(t, err)

	assert.Equal(t, 1, d.Number())
	assert.Equal(t, "Ann", d.Customer().Name())
	require.Len(t, d.Items(), 1)
	assert.Empty(t, wf.DraftItems())
	assert.Equal(t, 1, wf.DeliveryTotal())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFinalizeDeliveryCommandHandler_Handle_AppendsWhileEditing(t *testing.T) {
	ctx := t.Context()
	customer := mustCustomer(t, 1, "Ann")

	lookup := new(MockCatalog)
	lookup.On("FindCustomer", ctx, mock.Anything).Return(customer, true, nil).Once()

	wf := workflowWithDelivery(t)
	require.NoError(t, wf.StartEdit(1))
	require.NoError(t, wf.AddProduct(mustProduct(t, 10, "Widget"), mustQuantity(t, 3)))
	factory, _, _ := expectCommitted(t, wf)

	h := commands.NewFinalizeDeliveryCommandHandler(lookup, factory, discardLogger())
	d, err := h.Handle(ctx, commands.NewFinalizeDeliveryCommand("1"))
	require.NoError(t, err)

	assert.Equal(t, 1, d.Number())
	require.Len(t, d.Items(), 2)
	assert.Equal(t, 2, d.Items()[0].Quantity().Int())
	assert.Equal(t, 3, d.Items()[1].Quantity().Int())
	assert.Equal(t, workflow.Idle, wf.State())
}

func TestFinalizeDeliveryCommandHandler_Handle_BlankCustomer(t *testing.T) {
	lookup := new(MockCatalog)
	factory := new(MockWorkflowUoWFactory)

	h := commands.NewFinalizeDeliveryCommandHandler(lookup, factory, discardLogger())
	_, err := h.Handle(t.Context(), commands.NewFinalizeDeliveryCommand(" "))
	require.ErrorIs(t, err, workflow.ErrInvalidSelection)

	lookup.AssertNotCalled(t, "FindCustomer", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestFinalizeDeliveryCommandHandler_Handle_UnknownCustomerBeforeEmptyDraft(t *testing.T) {
	ctx := t.Context()
	lookup := new(MockCatalog)
	lookup.On("FindCustomer", ctx, mock.Anything).Return(catalog.Customer{}, false, nil).Once()
	factory := new(MockWorkflowUoWFactory)

	h := commands.NewFinalizeDeliveryCommandHandler(lookup, factory, discardLogger())
	_, err := h.Handle(ctx, commands.NewFinalizeDeliveryCommand("42"))
	require.ErrorIs(t, err, workflow.ErrInvalidSelection)
	assert.NotErrorIs(t, err, delivery.ErrEmptyDelivery)
	factory.AssertNotCalled(t, "Create")
}

func TestFinalizeDeliveryCommandHandler_Handle_EmptyDraft(t *testing.T) {
	ctx := t.Context()
	lookup := new(MockCatalog)
	lookup.On("FindCustomer", ctx, mock.Anything).Return(mustCustomer(t, 1, "Ann"), true, nil).Once()

	wf := workflow.New()
	factory, uow, repo := expectRolledBack(t, wf)

	h := commands.NewFinalizeDeliveryCommandHandler(lookup, factory, discardLogger())
	_, err := h.Handle(ctx, commands.NewFinalizeDeliveryCommand("1"))
	require.ErrorIs(t, err, delivery.ErrEmptyDelivery)
	assert.Zero(t, wf.DeliveryTotal())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinalizeDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewFinalizeDeliveryCommandHandler(new(MockCatalog), new(MockWorkflowUoWFactory), discardLogger())
	_, err := h.Handle(t.Context(), commands.FinalizeDeliveryCommand{})
	require.ErrorIs(t, err, commands.ErrFinalizeDeliveryCommandIsNotConstructed)
}
