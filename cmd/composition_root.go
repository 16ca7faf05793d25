package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "deliverydesk/internal/adapters/in/http"
	"deliverydesk/internal/adapters/out/memory"
	"deliverydesk/internal/adapters/out/postgres"
	"deliverydesk/internal/adapters/out/postgres/cacherepo"
	"deliverydesk/internal/adapters/out/refdata"
	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/jobs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	logger          *slog.Logger
	gormDB          *gorm.DB
	session         *memory.SessionStore
	workflowFactory *memory.WorkflowUnitOfWorkFactory
	store           *refdata.Store
}

// NewCompositionRoot wires the adapters selected by config. With
// CACHE_DRIVER=postgres it opens the database and migrates the cache table.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:  config,
		logger:  logger,
		session: memory.NewSessionStore(),
	}
	root.workflowFactory = memory.NewWorkflowUnitOfWorkFactory(root.session)

	var (
		cacheFactory ports.CacheUnitOfWorkFactory
		cache        ports.SessionCache
	)
	switch config.CacheDriver {
	case CacheDriverPostgres:
		db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err = db.WithContext(ctx).AutoMigrate(&cacherepo.SessionCacheEntryDTO{}); err != nil {
			return nil, fmt.Errorf("failed to migrate session cache: %w", err)
		}
		root.gormDB = db

		gormFactory := postgres.NewGormUnitOfWorkFactory(db)
		cacheFactory = gormFactory
		cache = gormFactory.Create().SessionCache()
	default:
		memoryCache := memory.NewSessionCache()
		cacheFactory = memory.NewCacheUnitOfWorkFactory(memoryCache)
		cache = memoryCache
	}

	root.store = refdata.NewStore(root.referenceSource(), cacheFactory, cache, logger)
	return root, nil
}

func (c *CompositionRoot) referenceSource() ports.ReferenceSource {
	if c.config.RefDataURL != "" {
		return refdata.NewHTTPSource(c.config.RefDataURL, c.config.RefDataTimeout)
	}
	return refdata.NewFileSource(c.config.RefDataDir)
}

// ReferenceData exposes the reference data store.
func (c *CompositionRoot) ReferenceData() *refdata.Store {
	return c.store
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.workflowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoadReferenceDataCommandHandler() commands.LoadReferenceDataCommandHandler {
	return commands.NewLoadReferenceDataCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.store, c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateStartEditCommandHandler() commands.StartEditCommandHandler {
	return commands.NewStartEditCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateCancelEditCommandHandler() commands.CancelEditCommandHandler {
	return commands.NewCancelEditCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeDeliveryCommandHandler() commands.FinalizeDeliveryCommandHandler {
	return commands.NewFinalizeDeliveryCommandHandler(c.store, c.workflowUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRemoveDeliveryCommandHandler() commands.RemoveDeliveryCommandHandler {
	return commands.NewRemoveDeliveryCommandHandler(c.workflowUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.session)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.session)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.store)
}

// CreateServer builds the HTTP server with every use case attached.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		AddProduct:       c.CreateAddProductCommandHandler(),
		RemoveLineItem:   c.CreateRemoveLineItemCommandHandler(),
		StartEdit:        c.CreateStartEditCommandHandler(),
		CancelEdit:       c.CreateCancelEditCommandHandler(),
		FinalizeDelivery: c.CreateFinalizeDeliveryCommandHandler(),
		RemoveDelivery:   c.CreateRemoveDeliveryCommandHandler(),
		GetDraft:         c.CreateGetDraftQueryHandler(),
		GetDeliveries:    c.CreateGetDeliveriesQueryHandler(),
		GetCustomers:     c.CreateGetCustomersQueryHandler(),
		GetProducts:      c.CreateGetProductsQueryHandler(),
	}, c.store, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDeliveriesQueryHandler(), c.config.TotalReportSchedule, c.logger)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}
