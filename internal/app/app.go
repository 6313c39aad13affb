// Package app assembles the API from configuration: database, change
// broker, record store, services and handlers.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/notify"
	"spendwise/internal/services"
	"spendwise/internal/store"
)

// redisPrefix namespaces change topics on a shared Redis.
const redisPrefix = "spendwise:"

// App holds the wired application.
type App struct {
	Config *config.Config
	DB     *database.Manager
	Broker notify.Broker
	Store  store.Store

	Users    services.UserServicer
	Summary  services.SummaryServicer
	Handlers Handlers

	cache *store.SnapshotCache
	log   *zap.SugaredLogger
}

// Handlers are the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Incomes  *handlers.RecordHandler
	Expenses *handlers.RecordHandler
	Category *handlers.CategoryHandler
	Budget   *handlers.BudgetHandler
	Summary  *handlers.SummaryHandler
}

// Open connects to the database, migrates it and builds every service on
// the configured record store.
func Open(ctx context.Context, cfg *config.Config, dbCfg *database.Config) (*App, error) {
	a := &App{Config: cfg, log: logger.Named("app")}

	dbManager, err := database.NewManager(dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	a.DB = dbManager

	if err := dbManager.RunMigrations(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := a.openStore(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.wire()
	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	if a.Config.RedisURL != "" {
		client, err := notify.DialRedis(ctx, a.Config.RedisURL)
		if err != nil {
			return err
		}
		a.Broker = notify.NewRedis(client, redisPrefix)
		a.log.Infow("change notifications via redis")
	} else {
		a.Broker = notify.NewLocal()
	}

	switch a.Config.StoreBackend {
	case config.StoreMemory:
		a.Store = store.NewMemory(a.Broker)
	case config.StoreSQL:
		if a.Config.CacheMaxCost > 0 {
			cache, err := store.NewSnapshotCache(a.Config.CacheMaxCost, a.Config.CacheTTL)
			if err != nil {
				return err
			}
			a.cache = cache
		}
		a.Store = store.NewSQL(a.DB.DB(), a.Broker, a.cache)
	default:
		return fmt.Errorf("unknown store backend %q", a.Config.StoreBackend)
	}
	a.log.Infow("record store ready", "backend", a.Config.StoreBackend, "cached", a.cache != nil)
	return nil
}

func (a *App) wire() {
	db := a.DB.DB()
	loc := a.Config.Location

	a.Users = services.NewUserService(db)
	auditService := services.NewAuditService(db)
	categoryService := services.NewCategoryService(a.Store)
	a.Summary = services.NewSummaryService(a.Store, loc)

	a.Handlers = Handlers{
		Auth:     handlers.NewAuthHandler(a.Users, auditService),
		Profile:  handlers.NewProfileHandler(a.Users, services.NewProfileService(a.Store), auditService),
		Incomes:  handlers.NewRecordHandler(services.NewIncomeService(a.Store, loc), auditService),
		Expenses: handlers.NewRecordHandler(services.NewExpenseService(a.Store, categoryService, loc), auditService),
		Category: handlers.NewCategoryHandler(categoryService, auditService),
		Budget:   handlers.NewBudgetHandler(services.NewBudgetService(a.Store), auditService),
		Summary:  handlers.NewSummaryHandler(a.Summary, a.Store, loc),
	}
}

// Close releases the broker, cache and database. Safe on a partly opened
// App.
func (a *App) Close() error {
	var errs []error
	if a.Broker != nil {
		errs = append(errs, a.Broker.Close())
	}
	if a.cache != nil {
		a.cache.Close()
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
