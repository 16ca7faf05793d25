package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/workflow"
)

// RemoveLineItemCommandHandler deletes a pending draft item.
type RemoveLineItemCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for RemoveLineItemCommand.
func NewRemoveLineItemCommandHandler(uowFactory WorkflowUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{uowFactory: uowFactory}
}

// Handle removes the item. Out-of-range positions fail with
// errs.ErrValueIsOutOfRange.
func (h RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inWorkflow(ctx, h.uowFactory, func(wf *workflow.Workflow) error {
		return wf.RemoveLineItem(cmd.Position())
	})
}
