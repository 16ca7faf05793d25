package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/workflow"
	"deliverydesk/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand asks to put quantity units of a product into the draft.
//
// Example:
//
//	cmd, err := NewAddProductCommand("10", 3)
//	if err != nil {
//	    return err // errors.Is(err, workflow.ErrInvalidSelection)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductCommand struct {
	productID kernel.RefID
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddProductCommand validates the raw selector values. A blank product id
// or a non-positive quantity fails with workflow.ErrInvalidSelection.
func NewAddProductCommand(productID string, quantity int) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the selected product id.
func (c AddProductCommand) ProductID() kernel.RefID {
	return c.productID
}

// Quantity returns the selected quantity.
func (c AddProductCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *AddProductCommand) setProductID(raw string) error {
	id, err := parseSelection("product", raw)
	if err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *AddProductCommand) setQuantity(raw int) error {
	q, err := kernel.NewQuantity(raw)
	if err != nil {
		return workflow.NewInvalidSelectionError("quantity", raw, err)
	}

	c.quantity = q
	return nil
}

// parseSelection turns a raw selector value into a RefID; blank selections
// are invalid.
func parseSelection(field, raw string) (kernel.RefID, error) {
	id, err := kernel.NewRefID(raw)
	if err != nil {
		return kernel.RefID{}, workflow.NewInvalidSelectionError(field, raw, err)
	}
	return id, nil
}
