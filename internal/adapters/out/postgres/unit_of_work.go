// Package postgres provides the GORM-backed session cache and its Unit of Work.
//
// It is selected with CACHE_DRIVER=postgres. The reference data load writes
// the customers and products entries through one unit of work, so a reader
// never sees one collection without the other.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	cache := uow.SessionCache()
//	if err := cache.Set(ctx, "customers", customersJSON); err != nil {
//	    return err
//	}
//	if err := cache.Set(ctx, "products", productsJSON); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each unit of work instance owns at most one transaction; goroutines must
// use separate instances.
package postgres

import (
	"context"

	"deliverydesk/internal/adapters/out/postgres/cacherepo"
	"deliverydesk/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.CacheUnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		writtenKeys: make([]string, 0),
	}
}

// GormUnitOfWork wraps a database transaction around session cache writes.
//
// It records every key written through its SessionCache so callers can log
// what a commit published.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.SessionCache().Set(ctx, "products", data); err != nil {
//	    return fmt.Errorf("failed to cache products: %w", err)
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("failed to commit transaction: %w", err)
//	}
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	writtenKeys []string
}

// Begin starts a transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the written entries visible.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the written entries.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SessionCache returns a cache bound to the open transaction, or to the
// connection pool when no transaction is open.
func (uow *GormUnitOfWork) SessionCache() ports.SessionCache {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return cacherepo.NewGormSessionCache(db, uow)
}

// TrackEntry records a key written through this unit of work.
func (uow *GormUnitOfWork) TrackEntry(key string) {
	uow.writtenKeys = append(uow.writtenKeys, key)
}

// WrittenKeys returns the keys written so far, in write order.
func (uow *GormUnitOfWork) WrittenKeys() []string {
	out := make([]string, len(uow.writtenKeys))
	copy(out, uow.writtenKeys)
	return out
}
