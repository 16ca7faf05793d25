package ports

import (
	"context"

	"deliverydesk/internal/core/domain/model/workflow"
)

// TxManager controls the lifetime of a unit of work.
type TxManager interface {
	// Begin starts the unit of work. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes the staged changes visible.
	// Returns an error if no unit of work is active.
	Commit(ctx context.Context) error

	// Rollback discards the staged changes.
	// Returns an error if no unit of work is active.
	Rollback(ctx context.Context) error
}

// CacheUnitOfWork writes several session cache entries atomically.
type CacheUnitOfWork interface {
	TxManager

	// SessionCache returns a cache bound to the current unit of work.
	SessionCache() SessionCache
}

// CacheUnitOfWorkFactory creates a fresh CacheUnitOfWork per operation.
type CacheUnitOfWorkFactory interface {
	Create() CacheUnitOfWork
}

// WorkflowRepository loads and stores the session's Workflow aggregate.
type WorkflowRepository interface {
	// Get returns a working copy of the aggregate.
	Get(ctx context.Context) (*workflow.Workflow, error)

	// Update stages the aggregate to become current on Commit.
	Update(ctx context.Context, aggregate *workflow.Workflow) error
}

// WorkflowUnitOfWork runs one user action against the workflow. While it is
// active no other action can observe or change the workflow.
type WorkflowUnitOfWork interface {
	TxManager

	// WorkflowRepository returns the repository bound to the current unit of work.
	WorkflowRepository() WorkflowRepository
}

// WorkflowUnitOfWorkFactory creates a fresh WorkflowUnitOfWork per action.
type WorkflowUnitOfWorkFactory interface {
	Create() WorkflowUnitOfWork
}

// WorkflowReader gives queries a consistent read-only copy of the workflow.
type WorkflowReader interface {
	Snapshot(ctx context.Context) (*workflow.Workflow, error)
}
