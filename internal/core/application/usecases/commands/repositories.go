// Package commands contains the user actions that change the form session.
// Every command follows the same pattern: a guarded command value validated
// at construction, and a handler that resolves selections against reference
// data, then mutates the workflow inside one unit of work.
package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/workflow"
	"deliverydesk/internal/core/ports"
)

type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkflowRepoFactory provides the workflow repository within a unit of work.
	WorkflowRepoFactory interface {
		WorkflowRepository() ports.WorkflowRepository
	}

	// WorkflowUoW serializes one action against the session workflow.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   wf, err := uow.WorkflowRepository().Get(ctx)
	//   // ... mutate wf
	//   err = uow.WorkflowRepository().Update(ctx, wf)
	//
	//   err = uow.Commit(ctx)
	WorkflowUoW interface {
		TxManager
		WorkflowRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// CatalogLookup resolves user selections against loaded reference data.
	CatalogLookup interface {
		FindCustomer(ctx context.Context, id kernel.RefID) (catalog.Customer, bool, error)
		FindProduct(ctx context.Context, id kernel.RefID) (catalog.Product, bool, error)
	}

	// CatalogLoader fetches and caches reference data.
	CatalogLoader interface {
		Load(ctx context.Context) (catalog.Customers, catalog.Products, error)
	}
)

// inWorkflow runs fn against the session workflow inside one unit of work.
// The aggregate is stored only when fn succeeds; any error rolls back.
func inWorkflow(ctx context.Context, factory WorkflowUoWFactory, fn func(wf *workflow.Workflow) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkflowRepository()
	wf, err := repo.Get(ctx)
	if err != nil {
		return err
	}

	if err = fn(wf); err != nil {
		return err
	}

	if err = repo.Update(ctx, wf); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
