package commands

import (
	"context"
	"log/slog"

	"deliverydesk/internal/core/domain/model/workflow"
)

// RemoveDeliveryCommandHandler deletes a delivery from the registry.
type RemoveDeliveryCommandHandler struct {
	uowFactory WorkflowUoWFactory
	logger     *slog.Logger
}

// NewRemoveDeliveryCommandHandler creates a handler for RemoveDeliveryCommand.
func NewRemoveDeliveryCommandHandler(uowFactory WorkflowUoWFactory, logger *slog.Logger) RemoveDeliveryCommandHandler {
	return RemoveDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "remove_delivery"),
	}
}

// Handle removes the delivery and reports whether an edit of that delivery
// was cancelled as a consequence.
func (h RemoveDeliveryCommandHandler) Handle(ctx context.Context, cmd RemoveDeliveryCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var cancelled bool
	err := inWorkflow(ctx, h.uowFactory, func(wf *workflow.Workflow) error {
		var removeErr error
		cancelled, removeErr = wf.RemoveDelivery(cmd.Number())
		return removeErr
	})
	if err != nil {
		return false, err
	}

	if cancelled {
		h.logger.InfoContext(ctx, "Edit cancelled because its delivery was removed", "number", cmd.Number())
	}
	return cancelled, nil
}
