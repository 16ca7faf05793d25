package commands

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrLoadReferenceDataCommandIsNotConstructed = errors.New(
	"LoadReferenceDataCommand must be created via NewLoadReferenceDataCommand constructor",
)

// LoadReferenceDataCommand asks to fetch and cache customers and products.
type LoadReferenceDataCommand struct {
	guard guard.ConstructorGuard
}

// NewLoadReferenceDataCommand creates the command.
func NewLoadReferenceDataCommand() LoadReferenceDataCommand {
	return LoadReferenceDataCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c LoadReferenceDataCommand) Validate() error {
	return c.guard.Validate(ErrLoadReferenceDataCommandIsNotConstructed)
}
