package commands_test

import (
	"context"
	"testing"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/workflow"
	"deliverydesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkflowRepository struct{ mock.Mock }

func (m *MockWorkflowRepository) Get(ctx context.Context) (*workflow.Workflow, error) {
	args := m.Called(ctx)
	wf, _ := args.Get(0).(*workflow.Workflow)
	return wf, args.Error(1)
}

func (m *MockWorkflowRepository) Update(ctx context.Context, wf *workflow.Workflow) error {
	args := m.Called(ctx, wf)
	return args.Error(0)
}

type MockWorkflowUoW struct{ mock.Mock }

func (m *MockWorkflowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) WorkflowRepository() ports.WorkflowRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkflowRepository)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) FindCustomer(ctx context.Context, id kernel.RefID) (catalog.Customer, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Customer), args.Bool(1), args.Error(2)
}

func (m *MockCatalog) FindProduct(ctx context.Context, id kernel.RefID) (catalog.Product, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Bool(1), args.Error(2)
}

func (m *MockCatalog) Load(ctx context.Context) (catalog.Customers, catalog.Products, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).(catalog.Customers)
	products, _ := args.Get(1).(catalog.Products)
	return customers, products, args.Error(2)
}

// expectCommitted wires a unit of work that loads wf and expects it to be
// stored and committed.
func expectCommitted(t *testing.T, wf *workflow.Workflow) (*MockWorkflowUoWFactory, *MockWorkflowUoW, *MockWorkflowRepository) {
	t.Helper()
	ctx := t.Context()

	repo := new(MockWorkflowRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkflowRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(wf, nil).Once(),
		repo.On("Update", ctx, wf).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

// expectRolledBack wires a unit of work that loads wf and expects the action
// to fail before anything is stored.
func expectRolledBack(t *testing.T, wf *workflow.Workflow) (*MockWorkflowUoWFactory, *MockWorkflowUoW, *MockWorkflowRepository) {
	t.Helper()
	ctx := t.Context()

	repo := new(MockWorkflowRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkflowRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(wf, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func mustProduct(t *testing.T, id int64, description string) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.RefIDFromInt(id), description, nil)
	require.NoError(t, err)
	return p
}

func mustCustomer(t *testing.T, id int64, name string) catalog.Customer {
	t.Helper()
	c, err := catalog.NewCustomer(kernel.RefIDFromInt(id), name, []string{"1 Main St"}, []string{"555-0100"}, "")
	require.NoError(t, err)
	return c
}

func mustQuantity(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

// workflowWithDelivery returns a workflow holding one finalized delivery
// (number 1) for customer 1 with product 10 x2.
func workflowWithDelivery(t *testing.T) *workflow.Workflow {
	t.Helper()
	wf := workflow.New()
	require.NoError(t, wf.AddProduct(mustProduct(t, 10, "Widget"), mustQuantity(t, 2)))
	_, err := wf.Finalize(mustCustomer(t, 1, "Ann"))
	require.NoError(t, err)
	return wf
}

// refIDMatching matches a RefID by its text, whatever JSON kind it came from.
func refIDMatching(text string) any {
	return mock.MatchedBy(func(id kernel.RefID) bool {
		return id.String() == text
	})
}
