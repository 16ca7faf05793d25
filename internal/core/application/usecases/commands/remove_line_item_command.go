package commands

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand asks to delete the pending draft item at a 0-based position.
// Range checking happens against the draft when the command is handled.
type RemoveLineItemCommand struct {
	position int

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates the command.
func NewRemoveLineItemCommand(position int) RemoveLineItemCommand {
	return RemoveLineItemCommand{position: position, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// Position returns the draft position to remove.
func (c RemoveLineItemCommand) Position() int {
	return c.position
}
