package commands

import (
	"context"
	"log/slog"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/workflow"
)

// FinalizeDeliveryCommandHandler commits the draft into the delivery registry.
//
// Example:
//
//	handler := NewFinalizeDeliveryCommandHandler(catalog, uowFactory, logger)
//	d, err := handler.Handle(ctx, NewFinalizeDeliveryCommand("1"))
//	switch {
//	case errors.Is(err, workflow.ErrInvalidSelection):
//	    // no or unknown customer
//	case errors.Is(err, delivery.ErrEmptyDelivery):
//	    // nothing to commit
//	}
type FinalizeDeliveryCommandHandler struct {
	catalog    CatalogLookup
	uowFactory WorkflowUoWFactory
	logger     *slog.Logger
}

// NewFinalizeDeliveryCommandHandler creates a handler for FinalizeDeliveryCommand.
func NewFinalizeDeliveryCommandHandler(
	catalog CatalogLookup,
	uowFactory WorkflowUoWFactory,
	logger *slog.Logger,
) FinalizeDeliveryCommandHandler {
	return FinalizeDeliveryCommandHandler{
		catalog:    catalog,
		uowFactory: uowFactory,
		logger:     logger.With("component", "finalize_delivery"),
	}
}

// Handle resolves the customer, then commits the draft as a new delivery or
// appends it to the delivery being edited. It returns the resulting delivery.
func (h FinalizeDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customerID, err := parseSelection("customer", cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	customer, found, err := h.catalog.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, workflow.NewInvalidSelectionError("customer", cmd.CustomerID(), nil)
	}

	var (
		result *delivery.Delivery
		edited bool
	)
	err = inWorkflow(ctx, h.uowFactory, func(wf *workflow.Workflow) error {
		_, edited = wf.EditCursor()
		d, finalizeErr := wf.Finalize(customer)
		if finalizeErr != nil {
			return finalizeErr
		}
		result = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Delivery finalized",
		"number", result.Number(),
		"customer_id", result.Customer().ID().String(),
		"items", len(result.Items()),
		"edited", edited,
	)
	return result, nil
}
