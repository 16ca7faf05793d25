package commands

import (
	"context"
	"log/slog"
)

// LoadReferenceDataCommandHandler performs the one-time reference data load.
type LoadReferenceDataCommandHandler struct {
	loader CatalogLoader
	logger *slog.Logger
}

// NewLoadReferenceDataCommandHandler creates a handler for LoadReferenceDataCommand.
func NewLoadReferenceDataCommandHandler(loader CatalogLoader, logger *slog.Logger) LoadReferenceDataCommandHandler {
	return LoadReferenceDataCommandHandler{
		loader: loader,
		logger: logger.With("component", "reference_data"),
	}
}

// Handle loads the data. A failure is logged and returned; it is a
// *catalog.LoadError unless the command itself is invalid.
func (h LoadReferenceDataCommandHandler) Handle(ctx context.Context, cmd LoadReferenceDataCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customers, products, err := h.loader.Load(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error loading reference data", "error", err)
		return err
	}

	h.logger.InfoContext(ctx, "Reference data loaded", "customers", len(customers), "products", len(products))
	return nil
}
