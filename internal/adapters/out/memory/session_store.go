package memory

import (
	"context"
	"errors"

	"deliverydesk/internal/core/domain/model/workflow"
	"deliverydesk/internal/core/ports"
)

// ErrUnitOfWorkIsNotActive is returned by Commit, Rollback and repository
// calls made outside Begin.
var ErrUnitOfWorkIsNotActive = errors.New("unit of work is not active")

// SessionStore owns the single Workflow of the session.
type SessionStore struct {
	// sem is a one-slot semaphore; waiting on it honors ctx cancellation
	sem     chan struct{}
	current *workflow.Workflow
}

// NewSessionStore creates a store holding a fresh Idle workflow.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sem:     make(chan struct{}, 1),
		current: workflow.New(),
	}
}

// Snapshot returns a copy of the committed workflow. It waits for any action
// in progress to finish.
func (s *SessionStore) Snapshot(ctx context.Context) (*workflow.Workflow, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	return s.current.Clone(), nil
}

func (s *SessionStore) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SessionStore) release() {
	<-s.sem
}

// WorkflowUnitOfWorkFactory creates units of work over one SessionStore.
type WorkflowUnitOfWorkFactory struct {
	store *SessionStore
}

// NewWorkflowUnitOfWorkFactory creates a factory for store.
func NewWorkflowUnitOfWorkFactory(store *SessionStore) *WorkflowUnitOfWorkFactory {
	return &WorkflowUnitOfWorkFactory{store: store}
}

// Create returns a new, inactive unit of work.
func (f *WorkflowUnitOfWorkFactory) Create() ports.WorkflowUnitOfWork {
	return &WorkflowUnitOfWork{store: f.store}
}

// WorkflowUnitOfWork stages changes to the session workflow.
//
// Between Begin and Commit/Rollback it holds the store exclusively. Changes
// passed to Update become visible only on Commit.
type WorkflowUnitOfWork struct {
	store  *SessionStore
	active bool
	staged *workflow.Workflow
}

// Begin takes the session. Calling it again while active is a no-op.
func (uow *WorkflowUnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	uow.staged = nil
	return nil
}

// Commit publishes the staged workflow, if any, and releases the session.
func (uow *WorkflowUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrUnitOfWorkIsNotActive
	}

	if uow.staged != nil {
		uow.store.current = uow.staged
	}
	uow.finish()
	return nil
}

// Rollback drops the staged workflow and releases the session.
func (uow *WorkflowUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrUnitOfWorkIsNotActive
	}

	uow.finish()
	return nil
}

// WorkflowRepository returns the repository bound to this unit of work.
func (uow *WorkflowUnitOfWork) WorkflowRepository() ports.WorkflowRepository {
	return &workflowRepository{uow: uow}
}

func (uow *WorkflowUnitOfWork) finish() {
	uow.staged = nil
	uow.active = false
	uow.store.release()
}

type workflowRepository struct {
	uow *WorkflowUnitOfWork
}

// Get returns a working copy of the staged workflow, or of the committed one
// when nothing has been staged yet.
func (r *workflowRepository) Get(_ context.Context) (*workflow.Workflow, error) {
	if !r.uow.active {
		return nil, ErrUnitOfWorkIsNotActive
	}

	if r.uow.staged != nil {
		return r.uow.staged.Clone(), nil
	}
	return r.uow.store.current.Clone(), nil
}

// Update stages a copy of aggregate.
func (r *workflowRepository) Update(_ context.Context, aggregate *workflow.Workflow) error {
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	if aggregate == nil {
		return errors.New("workflow aggregate is nil")
	}

	r.uow.staged = aggregate.Clone()
	return nil
}
