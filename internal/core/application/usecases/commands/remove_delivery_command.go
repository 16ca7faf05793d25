package commands

import (
	"errors"
	"fmt"

	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

var ErrRemoveDeliveryCommandIsNotConstructed = errors.New(
	"RemoveDeliveryCommand must be created via NewRemoveDeliveryCommand constructor",
)

// RemoveDeliveryCommand asks to delete a finalized delivery.
type RemoveDeliveryCommand struct {
	number int

	guard guard.ConstructorGuard
}

// NewRemoveDeliveryCommand creates the command. Delivery numbers start at 1.
func NewRemoveDeliveryCommand(number int) (RemoveDeliveryCommand, error) {
	if number <= 0 {
		return RemoveDeliveryCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery number", fmt.Errorf("%d is not greater than 0", number))
	}

	return RemoveDeliveryCommand{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryCommandIsNotConstructed)
}

// Number returns the delivery to remove.
func (c RemoveDeliveryCommand) Number() int {
	return c.number
}
