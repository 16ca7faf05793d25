package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/workflow"
)

// CancelEditCommandHandler returns the workflow to Idle and clears the draft.
type CancelEditCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewCancelEditCommandHandler creates a handler for CancelEditCommand.
func NewCancelEditCommandHandler(uowFactory WorkflowUoWFactory) CancelEditCommandHandler {
	return CancelEditCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the edit; it is a no-op when nothing is being edited.
func (h CancelEditCommandHandler) Handle(ctx context.Context, cmd CancelEditCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inWorkflow(ctx, h.uowFactory, func(wf *workflow.Workflow) error {
		wf.CancelEdit()
		return nil
	})
}
