package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/workflow"
)

// StartEditCommandHandler switches the workflow to Editing.
//
// Any pending draft items are dropped without warning when an edit starts.
type StartEditCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewStartEditCommandHandler creates a handler for StartEditCommand.
func NewStartEditCommandHandler(uowFactory WorkflowUoWFactory) StartEditCommandHandler {
	return StartEditCommandHandler{uowFactory: uowFactory}
}

// Handle opens the delivery. Unknown numbers fail with errs.ErrObjectNotFound.
func (h StartEditCommandHandler) Handle(ctx context.Context, cmd StartEditCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inWorkflow(ctx, h.uowFactory, func(wf *workflow.Workflow) error {
		return wf.StartEdit(cmd.Number())
	})
}
