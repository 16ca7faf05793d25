package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/workflow"
)

// AddProductCommandHandler resolves the selected product and adds it to the draft.
type AddProductCommandHandler struct {
	catalog    CatalogLookup
	uowFactory WorkflowUoWFactory
}

// NewAddProductCommandHandler creates a handler for AddProductCommand.
func NewAddProductCommandHandler(catalog CatalogLookup, uowFactory WorkflowUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		catalog:    catalog,
		uowFactory: uowFactory,
	}
}

// Handle adds the product. An id that does not resolve fails with
// workflow.ErrInvalidSelection and the draft is left untouched.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, found, err := h.catalog.FindProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !found {
		return workflow.NewInvalidSelectionError("product", cmd.ProductID(), nil)
	}

	return inWorkflow(ctx, h.uowFactory, func(wf *workflow.Workflow) error {
		return wf.AddProduct(product, cmd.Quantity())
	})
}
