package commands

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrFinalizeDeliveryCommandIsNotConstructed = errors.New(
	"FinalizeDeliveryCommand must be created via NewFinalizeDeliveryCommand constructor",
)

// FinalizeDeliveryCommand asks to commit the draft for the selected customer.
//
// The raw customer id is kept as given: checking it is the first precondition
// of finalizing and happens in the handler, before the draft is looked at.
type FinalizeDeliveryCommand struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewFinalizeDeliveryCommand creates the command.
func NewFinalizeDeliveryCommand(customerID string) FinalizeDeliveryCommand {
	return FinalizeDeliveryCommand{customerID: customerID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c FinalizeDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeDeliveryCommandIsNotConstructed)
}

// CustomerID returns the raw customer selector value.
func (c FinalizeDeliveryCommand) CustomerID() string {
	return c.customerID
}
