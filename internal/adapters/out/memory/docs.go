// Package memory keeps the form session in process memory.
//
// The session workflow lives in a SessionStore. Every user action runs in a
// WorkflowUnitOfWork that holds the store's lock from Begin until Commit or
// Rollback, so actions coming from concurrent HTTP requests are applied one at
// a time, each observing the result of the previous one.
//
//	store := memory.NewSessionStore()
//	factory := memory.NewWorkflowUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	wf, err := uow.WorkflowRepository().Get(ctx)
//	// ... mutate wf
//	err = uow.WorkflowRepository().Update(ctx, wf)
//	return uow.Commit(ctx)
//
// The package also provides the default SessionCache backend used for the
// serialized reference collections.
package memory
