package commands

import (
	"errors"
	"fmt"

	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/guard"
)

var ErrStartEditCommandIsNotConstructed = errors.New(
	"StartEditCommand must be created via NewStartEditCommand constructor",
)

// StartEditCommand asks to open a finalized delivery for editing.
type StartEditCommand struct {
	number int

	guard guard.ConstructorGuard
}

// NewStartEditCommand creates the command. Delivery numbers start at 1.
func NewStartEditCommand(number int) (StartEditCommand, error) {
	if number <= 0 {
		return StartEditCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery number", fmt.Errorf("%d is not greater than 0", number))
	}

	return StartEditCommand{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartEditCommand) Validate() error {
	return c.guard.Validate(ErrStartEditCommandIsNotConstructed)
}

// Number returns the delivery to edit.
func (c StartEditCommand) Number() int {
	return c.number
}
