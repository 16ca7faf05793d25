// Package ports defines the contracts between the delivery desk core and its
// adapters: where reference data comes from, where it is cached, and where the
// workflow session lives.
package ports

import (
	"context"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
)

// Reference collection names, used both as source file stems and as session
// cache keys.
const (
	CustomersCollection = "customers"
	ProductsCollection  = "products"
)

// ReferenceSource fetches the raw JSON text of one reference collection.
type ReferenceSource interface {
	// Fetch returns the JSON array stored for collection ("customers" or "products").
	Fetch(ctx context.Context, collection string) ([]byte, error)
}

// ReferenceDataStore loads the reference collections once and answers
// lookups from the session cache afterwards.
type ReferenceDataStore interface {
	// Load fetches both collections, caches them and returns them.
	// Any fetch or decode failure is a *catalog.LoadError.
	Load(ctx context.Context) (catalog.Customers, catalog.Products, error)

	// Loaded reports whether a Load has completed successfully.
	Loaded() bool

	// Customers returns the cached customers, empty before Load completes.
	Customers(ctx context.Context) (catalog.Customers, error)

	// Products returns the cached products, empty before Load completes.
	Products(ctx context.Context) (catalog.Products, error)

	// FindCustomer looks up a customer by exact id. A miss is reported by the
	// boolean, never by the error, which is reserved for cache failures.
	FindCustomer(ctx context.Context, id kernel.RefID) (catalog.Customer, bool, error)

	// FindProduct looks up a product by exact id, with the same contract as FindCustomer.
	FindProduct(ctx context.Context, id kernel.RefID) (catalog.Product, bool, error)
}
