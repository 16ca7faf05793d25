package queries

import (
	"context"
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves the customer selector options.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates the query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryHandler lists the loaded customers.
type GetCustomersQueryHandler struct {
	catalog CatalogReader
}

// NewGetCustomersQueryHandler creates a handler for GetCustomersQuery.
func NewGetCustomersQueryHandler(catalog CatalogReader) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{catalog: catalog}
}

// Handle returns the customers in source order; the list is empty until
// reference data has been loaded.
func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers, err := h.catalog.Customers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, customerView(c))
	}
	return views, nil
}
