package queries

import (
	"context"
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product selector options.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates the query.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryHandler lists the loaded products.
type GetProductsQueryHandler struct {
	catalog CatalogReader
}

// NewGetProductsQueryHandler creates a handler for GetProductsQuery.
func NewGetProductsQueryHandler(catalog CatalogReader) GetProductsQueryHandler {
	return GetProductsQueryHandler{catalog: catalog}
}

// Handle returns the products in source order, empty before load.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	return views, nil
}
