package commands

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrCancelEditCommandIsNotConstructed = errors.New(
	"CancelEditCommand must be created via NewCancelEditCommand constructor",
)

// CancelEditCommand asks to leave Editing without committing.
type CancelEditCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelEditCommand creates the command.
func NewCancelEditCommand() CancelEditCommand {
	return CancelEditCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CancelEditCommand) Validate() error {
	return c.guard.Validate(ErrCancelEditCommandIsNotConstructed)
}
