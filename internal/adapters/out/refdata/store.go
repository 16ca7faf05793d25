package refdata

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/ports"
)

// Store implements ports.ReferenceDataStore.
//
// Load fetches both collections, validates them and writes their JSON form
// to the session cache under the "customers" and "products" keys in one
// unit of work. Lookups always read back from the cache, so they see
// exactly what was stored. Before a successful load the cache is empty and
// every lookup misses.
type Store struct {
	source     ports.ReferenceSource
	uowFactory ports.CacheUnitOfWorkFactory
	cache      ports.SessionCache
	logger     *slog.Logger
	loaded     atomic.Bool
}

// NewStore creates a Store. cache is used for reads; uowFactory for the
// write performed by Load.
func NewStore(
	source ports.ReferenceSource,
	uowFactory ports.CacheUnitOfWorkFactory,
	cache ports.SessionCache,
	logger *slog.Logger,
) *Store {
	return &Store{
		source:     source,
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "refdata_store"),
	}
}

// Load fetches, validates and caches both collections. Any failure is a
// *catalog.LoadError and leaves the cache untouched.
func (s *Store) Load(ctx context.Context) (catalog.Customers, catalog.Products, error) {
	customers, err := fetch(ctx, s.source, ports.CustomersCollection, decodeCustomers)
	if err != nil {
		return nil, nil, err
	}
	products, err := fetch(ctx, s.source, ports.ProductsCollection, decodeProducts)
	if err != nil {
		return nil, nil, err
	}

	customersJSON, err := encodeCustomers(customers)
	if err != nil {
		return nil, nil, catalog.NewLoadError(ports.CustomersCollection, err)
	}
	productsJSON, err := encodeProducts(products)
	if err != nil {
		return nil, nil, catalog.NewLoadError(ports.ProductsCollection, err)
	}

	if err = s.store(ctx, customersJSON, productsJSON); err != nil {
		return nil, nil, catalog.NewLoadError("session cache", err)
	}

	s.loaded.Store(true)
	s.logger.DebugContext(ctx, "Reference data cached",
		"customers", len(customers),
		"products", len(products),
	)
	return customers, products, nil
}

// Loaded reports whether a Load has succeeded.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}

// Customers returns the cached customers.
func (s *Store) Customers(ctx context.Context) (catalog.Customers, error) {
	return cached(ctx, s.cache, ports.CustomersCollection, decodeCustomers)
}

// Products returns the cached products.
func (s *Store) Products(ctx context.Context) (catalog.Products, error) {
	return cached(ctx, s.cache, ports.ProductsCollection, decodeProducts)
}

// FindCustomer looks up a cached customer by id.
func (s *Store) FindCustomer(ctx context.Context, id kernel.RefID) (catalog.Customer, bool, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return catalog.Customer{}, false, err
	}

	c, ok := customers.Find(id)
	return c, ok, nil
}

// FindProduct looks up a cached product by id.
func (s *Store) FindProduct(ctx context.Context, id kernel.RefID) (catalog.Product, bool, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return catalog.Product{}, false, err
	}

	p, ok := products.Find(id)
	return p, ok, nil
}

func (s *Store) store(ctx context.Context, customersJSON, productsJSON string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cache := uow.SessionCache()
	if err := cache.Set(ctx, ports.CustomersCollection, customersJSON); err != nil {
		return err
	}
	if err := cache.Set(ctx, ports.ProductsCollection, productsJSON); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func fetch[T any](
	ctx context.Context,
	source ports.ReferenceSource,
	collection string,
	decode func([]byte) (T, error),
) (T, error) {
	var zero T

	data, err := source.Fetch(ctx, collection)
	if err != nil {
		return zero, catalog.NewLoadError(collection, err)
	}

	out, err := decode(data)
	if err != nil {
		return zero, catalog.NewLoadError(collection, fmt.Errorf("malformed %s.json: %w", collection, err))
	}
	return out, nil
}

func cached[T any](
	ctx context.Context,
	cache ports.SessionCache,
	key string,
	decode func([]byte) (T, error),
) (T, error) {
	var zero T

	raw, ok, err := cache.Get(ctx, key)
	if err != nil || !ok {
		return zero, err
	}

	out, err := decode([]byte(raw))
	if err != nil {
		return zero, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return out, nil
}
